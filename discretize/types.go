// SPDX-License-Identifier: MIT

package discretize

import "errors"

var (
	// ErrEmptyInput indicates a zero-length vector.
	ErrEmptyInput = errors.New("discretize: input vector is empty")

	// ErrNonFinite indicates a NaN or ±Inf value in the input vector.
	ErrNonFinite = errors.New("discretize: NaN or Inf encountered")
)

// MinBins is the smallest target number of populated bins.
const MinBins = 2

// Rule selects how the target number of populated bins is derived from the
// sample count n.
//
//   - CubeRoot        — ⌊∛n⌋ regardless of dimension (default).
//   - SqrtByDimension — ⌊√n⌋ for one-dimensional use, ⌊n^¼⌋ when the vector
//     is one axis of a joint (two-dimensional) distribution.
type Rule int

const (
	// CubeRoot targets ⌊∛n⌋ populated bins.
	CubeRoot Rule = iota

	// SqrtByDimension targets ⌊√n⌋ (dimension 1) or ⌊n^¼⌋ (dimension ≥ 2).
	SqrtByDimension
)

// Options configures Discretize.
type Options struct {
	Rule      Rule
	Dimension int // ≥ 1; only SqrtByDimension reads it
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns CubeRoot with dimension 1.
func DefaultOptions() Options {
	return Options{Rule: CubeRoot, Dimension: 1}
}

// WithRule selects the bin-count rule.
func WithRule(r Rule) Option {
	if r != CubeRoot && r != SqrtByDimension {
		panic("discretize: WithRule: unknown rule")
	}

	return func(o *Options) { o.Rule = r }
}

// WithDimension sets the dimensionality hint (≥ 1) of the space the vector
// is an axis of.
func WithDimension(d int) Option {
	if d < 1 {
		panic("discretize: WithDimension: dimension must be ≥ 1")
	}

	return func(o *Options) { o.Dimension = d }
}
