// SPDX-License-Identifier: MIT

package auto

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/nescience"
	"github.com/katalvlaran/nescience/search"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("auto: not fitted")

	// ErrNoProba indicates PredictProba on a model without probabilities.
	ErrNoProba = errors.New("auto: model does not predict probabilities")

	// ErrUnknownClass indicates a prediction outside the fitted class table.
	ErrUnknownClass = errors.New("auto: prediction outside the class table")
)

// Options configures the facades.
type Options struct {
	Factories    search.Factories
	Nescience    []nescience.Option
	FeatureKinds []dataset.Kind // nil ⇒ every feature Numeric
	Parallelism  int
	Window       int // lag window of TimeSeries; 0 ⇒ ⌊√len(ts)⌋
	Logger       *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions wires search.DefaultFactories, sequential search and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Factories:   search.DefaultFactories(),
		Parallelism: 1,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFactories replaces the estimator factories.
func WithFactories(f search.Factories) Option {
	return func(o *Options) { o.Factories = f }
}

// WithNescience configures the scorer every candidate is judged by.
func WithNescience(opts ...nescience.Option) Option {
	return func(o *Options) { o.Nescience = append([]nescience.Option(nil), opts...) }
}

// WithFeatureKinds tags the feature columns passed to Fit.
func WithFeatureKinds(kinds ...dataset.Kind) Option {
	return func(o *Options) { o.FeatureKinds = append([]dataset.Kind(nil), kinds...) }
}

// WithParallelism evaluates up to k candidates of one search step
// concurrently. Panics if k < 1.
func WithParallelism(k int) Option {
	if k < 1 {
		panic("auto: WithParallelism(k) requires k >= 1")
	}

	return func(o *Options) { o.Parallelism = k }
}

// WithWindow fixes the lag window of TimeSeries. Panics if size < 1.
func WithWindow(size int) Option {
	if size < 1 {
		panic("auto: WithWindow(size) requires size >= 1")
	}

	return func(o *Options) { o.Window = size }
}

// WithLogger routes search progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("auto: WithLogger(nil)")
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
