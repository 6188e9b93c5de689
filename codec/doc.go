// SPDX-License-Identifier: MIT

// Package codec adapts general-purpose byte compressors to the single
// capability the surfeit metric needs: Compress([]byte) ([]byte, error).
//
// Available codecs (Parse names in brackets):
//
//	Bzip2     [bz2]         — default; level 9, github.com/dsnet/compress.
//	LZMA      [lzma]        — xz container, github.com/ulikunitz/xz.
//	LZMAAlone [lzma-alone]  — classic .lzma stream, github.com/ulikunitz/xz/lzma.
//	Zlib      [zlib]        — level 9, github.com/klauspost/compress.
//	Zstd      [zstd]        — best-compression level, github.com/klauspost/compress.
//
// Every codec is stateless and safe for concurrent use.
package codec
