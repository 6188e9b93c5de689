// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/model"
)

var (
	// ErrSkip marks a family or move that does not apply to the problem.
	// It is not a failure.
	ErrSkip = errors.New("search: skipped")

	// ErrNoModel indicates that no family scored below the ceiling.
	ErrNoModel = errors.New("search: no model below the ceiling")

	// ErrInvalidParam indicates a malformed coordinate-search parameter.
	ErrInvalidParam = errors.New("search: invalid parameter")
)

const (
	// DefaultCeiling is the score an engine's incumbent starts with.
	DefaultCeiling = 1.0

	// DefaultHidden is the width of a freshly added hidden layer.
	DefaultHidden = 3
)

// State is one scored candidate. A State is replaced whole, never
// partially updated.
type State struct {
	Score     float64
	Estimator model.Estimator
	ViU       dataset.ViU // nil when the estimator reads every feature
	Hidden    []int       // hidden layer widths of an MLP candidate
	Family    string      // set by Engine.Run
}

// Move builds and scores one candidate. Returning ErrSkip discards the move.
type Move func() (State, error)

// Options configures the search loops and the engine.
type Options struct {
	Parallelism int
	Ceiling     float64
	Logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential evaluation, DefaultCeiling and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Parallelism: 1,
		Ceiling:     DefaultCeiling,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithParallelism evaluates up to k candidates of one step concurrently.
// Panics if k < 1.
func WithParallelism(k int) Option {
	if k < 1 {
		panic("search: WithParallelism(k) requires k >= 1")
	}

	return func(o *Options) { o.Parallelism = k }
}

// WithCeiling sets the score the engine's incumbent starts with.
// Panics if c is not positive.
func WithCeiling(c float64) Option {
	if !(c > 0) {
		panic("search: WithCeiling(c) requires c > 0")
	}

	return func(o *Options) { o.Ceiling = c }
}

// WithLogger routes family progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
