// SPDX-License-Identifier: MIT

package nescience

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nescience/codec"
	"github.com/katalvlaran/nescience/discretize"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("nescience: not fitted")

	// ErrInvalidMethod indicates an unknown aggregation method.
	ErrInvalidMethod = errors.New("nescience: invalid method")

	// ErrMissingModel indicates a nil estimator without all three shortcuts.
	ErrMissingModel = errors.New("nescience: estimator required unless subset, predictions and model string are all given")
)

// DefaultEpsilon replaces zero components.
const DefaultEpsilon = 1e-6

// Method selects how the three components are aggregated.
type Method int

const (
	Euclid Method = iota
	Arithmetic
	Geometric
	Product
	Addition
	Harmonic
)

var methodNames = [...]string{
	Euclid:     "Euclid",
	Arithmetic: "Arithmetic",
	Geometric:  "Geometric",
	Product:    "Product",
	Addition:   "Addition",
	Harmonic:   "Harmonic",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a method name ("Harmonic", ...) onto a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Options configures a Nescience.
type Options struct {
	Method     Method
	Compressor codec.Compressor
	Epsilon    float64
	Rule       discretize.Rule
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Harmonic aggregation, bzip2 and DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Method:     Harmonic,
		Compressor: codec.Default(),
		Epsilon:    DefaultEpsilon,
		Rule:       discretize.CubeRoot,
	}
}

// WithMethod selects the aggregation method.
func WithMethod(m Method) Option {
	if m < Euclid || m > Harmonic {
		panic("nescience: WithMethod: unknown method")
	}

	return func(o *Options) { o.Method = m }
}

// WithCompressor selects the surfeit codec.
func WithCompressor(c codec.Compressor) Option {
	if c == nil {
		panic("nescience: WithCompressor: nil compressor")
	}

	return func(o *Options) { o.Compressor = c }
}

// WithEpsilon sets the zero-component replacement (> 0).
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("nescience: WithEpsilon: epsilon must be > 0")
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithRule selects the bin-count rule used by every component.
func WithRule(r discretize.Rule) Option {
	return func(o *Options) { o.Rule = r }
}
