// SPDX-License-Identifier: MIT

package surfeit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nescience/codec"
	"github.com/katalvlaran/nescience/codelen"
	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/discretize"
	"github.com/katalvlaran/nescience/model"
	"github.com/katalvlaran/nescience/serialize"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("surfeit: not fitted")

	// ErrEmptyModel indicates an empty model description.
	ErrEmptyModel = errors.New("surfeit: empty model string")
)

// DefaultFloor is the surfeit of descriptions too short to compress.
const DefaultFloor = 0.25

// Options configures a Surfeit.
type Options struct {
	Compressor codec.Compressor
	Floor      float64
	Rule       discretize.Rule
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns bzip2 at level 9 and DefaultFloor.
func DefaultOptions() Options {
	return Options{Compressor: codec.Default(), Floor: DefaultFloor, Rule: discretize.CubeRoot}
}

// WithCompressor selects the codec.
func WithCompressor(c codec.Compressor) Option {
	if c == nil {
		panic("surfeit: WithCompressor: nil compressor")
	}

	return func(o *Options) { o.Compressor = c }
}

// WithFloor sets the surfeit of incompressible descriptions; f ∈ [0, 1].
func WithFloor(f float64) Option {
	if f < 0 || f > 1 {
		panic("surfeit: WithFloor: floor must be in [0,1]")
	}

	return func(o *Options) { o.Floor = f }
}

// WithRule selects the bin-count rule used for L(y).
func WithRule(r discretize.Rule) Option {
	return func(o *Options) { o.Rule = r }
}

// Surfeit scores model descriptions against the fitted target.
type Surfeit struct {
	opts   Options
	lenY   float64
	fitted bool
}

// New returns an unfitted Surfeit.
func New(opts ...Option) *Surfeit {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Surfeit{opts: cfg}
}

// Fit stores L(y) of ds.
func (s *Surfeit) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return dataset.ErrNil
	}
	ly, err := codelen.OptimalCodeLength(codelen.Of(ds.Y(), ds.TargetKind()), nil, codelen.WithRule(s.opts.Rule))
	if err != nil {
		return fmt.Errorf("surfeit: target: %w", err)
	}
	s.lenY = ly
	s.fitted = true

	return nil
}

// String scores a model description.
func (s *Surfeit) String(desc string) (float64, error) {
	if !s.fitted {
		return 0, ErrNotFitted
	}
	raw := []byte(desc)
	l := float64(len(raw))
	if l == 0 {
		return 0, ErrEmptyModel
	}
	packed, err := s.opts.Compressor.Compress(raw)
	if err != nil {
		return 0, fmt.Errorf("surfeit: %w", err)
	}
	k := float64(len(packed))

	switch {
	case k >= l:
		return s.opts.Floor, nil
	case s.lenY < k:
		return 1 - s.lenY/l, nil
	default:
		return 1 - k/l, nil
	}
}

// Model serializes m and scores the result.
func (s *Surfeit) Model(m model.Model) (float64, error) {
	if !s.fitted {
		return 0, ErrNotFitted
	}
	desc, err := serialize.Model(m)
	if err != nil {
		return 0, err
	}

	return s.String(desc)
}
