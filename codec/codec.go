// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// ErrUnknownCodec indicates a codec name Parse does not recognise.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// BestLevel is the compression level used by the leveled codecs.
const BestLevel = 9

// Compressor turns a byte string into its compressed form.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
}

// Default returns the default codec (Bzip2).
func Default() Compressor { return Bzip2{} }

// Bzip2 compresses with bzip2 at level 9.
type Bzip2 struct{}

// Compress implements Compressor.
func (Bzip2) Compress(src []byte) ([]byte, error) {
	return stream(src, func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: BestLevel})
	})
}

// LZMA compresses into an xz container.
type LZMA struct{}

// Compress implements Compressor.
func (LZMA) Compress(src []byte) ([]byte, error) {
	return stream(src, func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	})
}

// LZMAAlone compresses into a classic .lzma stream (13-byte header).
type LZMAAlone struct{}

// Compress implements Compressor.
func (LZMAAlone) Compress(src []byte) ([]byte, error) {
	return stream(src, func(w io.Writer) (io.WriteCloser, error) {
		return lzma.NewWriter(w)
	})
}

// Zlib compresses with deflate in a zlib wrapper at level 9.
type Zlib struct{}

// Compress implements Compressor.
func (Zlib) Compress(src []byte) ([]byte, error) {
	return stream(src, func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, zlib.BestCompression)
	})
}

// Zstd compresses a single zstd frame at the best-compression level.
type Zstd struct{}

// Compress implements Compressor.
func (Zstd) Compress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("codec: zstd: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(src, nil), nil
}

var registry = map[string]Compressor{
	"bz2":        Bzip2{},
	"lzma":       LZMA{},
	"lzma-alone": LZMAAlone{},
	"zlib":       Zlib{},
	"zstd":       Zstd{},
}

// Parse maps a codec name onto a Compressor.
func Parse(name string) (Compressor, error) {
	if c, ok := registry[name]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownCodec, name, Names())
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// stream runs src through a writer-style encoder and returns the bytes
// written once the encoder is closed.
func stream(src []byte, open func(io.Writer) (io.WriteCloser, error)) ([]byte, error) {
	var buf bytes.Buffer
	w, err := open(&buf)
	if err != nil {
		return nil, fmt.Errorf("codec: open: %w", err)
	}
	if _, err = w.Write(src); err != nil {
		_ = w.Close()

		return nil, fmt.Errorf("codec: write: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("codec: close: %w", err)
	}

	return buf.Bytes(), nil
}
