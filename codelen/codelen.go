// SPDX-License-Identifier: MIT

package codelen

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/discretize"
)

var (
	// ErrEmptyInput indicates a variable without samples.
	ErrEmptyInput = errors.New("codelen: empty input")

	// ErrLengthMismatch indicates two variables of different length.
	ErrLengthMismatch = errors.New("codelen: variables have different lengths")
)

// Variable is a sample vector tagged as numeric or categorical.
type Variable struct {
	Values  []float64
	Numeric bool
}

// Numeric wraps v as a numeric variable.
func Numeric(v []float64) Variable { return Variable{Values: v, Numeric: true} }

// Categorical wraps v as a categorical variable.
func Categorical(v []float64) Variable { return Variable{Values: v} }

// Options configures the encoding step.
type Options struct {
	Rule discretize.Rule
}

// Option mutates Options.
type Option func(*Options)

// WithRule selects the bin-count rule used for numeric variables.
func WithRule(r discretize.Rule) Option {
	return func(o *Options) { o.Rule = r }
}

// Pair is the Cantor pairing function (a+b)(a+b+1)/2 + b.
func Pair(a, b int) int {
	s := a + b

	return s*(s+1)/2 + b
}

// Count returns the frequencies of the occupied symbols of v1, or of the
// joint symbol (v1, v2) when v2 is non-nil. Zero counts never appear; the
// order follows the symbol value.
//
// Dimension hints follow the joint shape: a lone numeric v1 is binned as an
// axis of a two-dimensional space, a paired v1 as one-dimensional, and v2
// always as two-dimensional.
func Count(v1 Variable, v2 *Variable, opts ...Option) ([]int, error) {
	cfg := Options{Rule: discretize.CubeRoot}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(v1.Values)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if v2 != nil && len(v2.Values) != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(v2.Values))
	}

	// Stage 1: encode each variable onto 0..k-1.
	dim := 2
	if v2 != nil {
		dim = 1
	}
	c1, err := encode(v1, dim, cfg.Rule)
	if err != nil {
		return nil, err
	}
	symbols := c1
	if v2 != nil {
		var c2 []int
		if c2, err = encode(*v2, 2, cfg.Rule); err != nil {
			return nil, err
		}
		symbols = make([]int, n)
		for i := range c1 {
			symbols[i] = Pair(c1[i], c2[i])
		}
	}

	// Stage 2: sort the symbols and count runs; memory stays O(n) however
	// large the paired symbols get.
	sorted := append([]int(nil), symbols...)
	slices.Sort(sorted)
	counts := make([]int, 0)
	run := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1] {
			run++
			continue
		}
		counts = append(counts, run)
		run = 1
	}

	return counts, nil
}

// OptimalCodeLength returns L(v1) or L(v1, v2) in bits.
func OptimalCodeLength(v1 Variable, v2 *Variable, opts ...Option) (float64, error) {
	counts, err := Count(v1, v2, opts...)
	if err != nil {
		return 0, err
	}

	n := float64(len(v1.Values))
	var bits float64
	for _, c := range counts {
		f := float64(c)
		bits -= f * math.Log2(f/n)
	}

	return bits, nil
}

func encode(v Variable, dim int, rule discretize.Rule) ([]int, error) {
	if !v.Numeric {
		codes, _ := discretize.Relabel(v.Values)

		return codes, nil
	}
	codes, err := discretize.Discretize(v.Values,
		discretize.WithRule(rule), discretize.WithDimension(dim))
	if err != nil {
		return nil, fmt.Errorf("codelen: %w", err)
	}

	return codes, nil
}

// Of wraps v with the numeric flag derived from a dataset kind.
func Of(v []float64, k dataset.Kind) Variable {
	return Variable{Values: v, Numeric: k == dataset.Numeric}
}
