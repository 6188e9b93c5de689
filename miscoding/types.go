// SPDX-License-Identifier: MIT

package miscoding

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nescience/discretize"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("miscoding: not fitted")

	// ErrInvalidMode indicates an unknown or unsupported miscoding mode.
	ErrInvalidMode = errors.New("miscoding: invalid mode")

	// ErrInvalidArgument indicates an out-of-range feature, lag or mask.
	ErrInvalidArgument = errors.New("miscoding: invalid argument")
)

// Mode selects a view of the per-feature miscoding vector.
type Mode int

const (
	Regular Mode = iota
	Adjusted
	Partial
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Regular:
		return "regular"
	case Adjusted:
		return "adjusted"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "regular" / "adjusted" / "partial" onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "regular":
		return Regular, nil
	case "adjusted":
		return Adjusted, nil
	case "partial":
		return Partial, nil
	}

	return 0, fmt.Errorf("%w: %q (valid: regular, adjusted, partial)", ErrInvalidMode, s)
}

// Profile holds the three views of the per-feature miscoding vector.
type Profile struct {
	Regular  []float64
	Adjusted []float64
	Partial  []float64
}

// view returns a copy of the slice selected by mode.
func (p Profile) view(mode Mode) ([]float64, error) {
	var src []float64
	switch mode {
	case Regular:
		src = p.Regular
	case Adjusted:
		src = p.Adjusted
	case Partial:
		src = p.Partial
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	return append([]float64(nil), src...), nil
}

// Options configures a Miscoding.
type Options struct {
	Rule discretize.Rule
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the cube-root binning rule.
func DefaultOptions() Options {
	return Options{Rule: discretize.CubeRoot}
}

// WithRule selects the bin-count rule for numeric variables.
func WithRule(r discretize.Rule) Option {
	return func(o *Options) { o.Rule = r }
}
