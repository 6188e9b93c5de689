// SPDX-License-Identifier: MIT

package inaccuracy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/codelen"
	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/discretize"
	"github.com/katalvlaran/nescience/model"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("inaccuracy: not fitted")

	// ErrLengthMismatch indicates a prediction vector whose length differs
	// from the number of samples.
	ErrLengthMismatch = errors.New("inaccuracy: predictions length mismatch")
)

// Options configures an Inaccuracy.
type Options struct {
	Rule discretize.Rule
}

// Option mutates Options.
type Option func(*Options)

// WithRule selects the bin-count rule for numeric targets.
func WithRule(r discretize.Rule) Option {
	return func(o *Options) { o.Rule = r }
}

// Inaccuracy scores predictions against the fitted target.
type Inaccuracy struct {
	opts Options
	ds   *dataset.Dataset
	y    []float64
	lenY float64
	kind dataset.Kind
}

// New returns an unfitted Inaccuracy.
func New(opts ...Option) *Inaccuracy {
	cfg := Options{Rule: discretize.CubeRoot}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Inaccuracy{opts: cfg}
}

// Fit stores the target of ds and its code length.
func (a *Inaccuracy) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return dataset.ErrNil
	}
	y := ds.Y()
	ly, err := codelen.OptimalCodeLength(codelen.Of(y, ds.TargetKind()), nil, codelen.WithRule(a.opts.Rule))
	if err != nil {
		return fmt.Errorf("inaccuracy: target: %w", err)
	}

	a.ds = ds
	a.y = y
	a.lenY = ly
	a.kind = ds.TargetKind()

	return nil
}

// Model predicts with p and scores the result. X defaults to the fitted
// feature matrix when nil; callers searching over feature subsets pass the
// column-selected view the model was trained on.
func (a *Inaccuracy) Model(p model.Predictor, X mat.Matrix) (float64, error) {
	if a.ds == nil {
		return 0, ErrNotFitted
	}
	if X == nil {
		X = a.ds.X()
	}
	pred, err := p.Predict(X)
	if err != nil {
		return 0, fmt.Errorf("inaccuracy: predict: %w", err)
	}

	return a.Predictions(pred)
}

// Predictions scores a prediction vector.
func (a *Inaccuracy) Predictions(pred []float64) (float64, error) {
	if a.ds == nil {
		return 0, ErrNotFitted
	}
	if len(pred) != len(a.y) {
		return 0, fmt.Errorf("%w: %d predictions for %d samples", ErrLengthMismatch, len(pred), len(a.y))
	}

	p := codelen.Of(pred, a.kind)
	y := codelen.Of(a.y, a.kind)
	rule := codelen.WithRule(a.opts.Rule)
	lp, err := codelen.OptimalCodeLength(p, nil, rule)
	if err != nil {
		return 0, fmt.Errorf("inaccuracy: predictions: %w", err)
	}
	lj, err := codelen.OptimalCodeLength(p, &y, rule)
	if err != nil {
		return 0, fmt.Errorf("inaccuracy: joint: %w", err)
	}

	hi := math.Max(a.lenY, lp)
	if hi == 0 {
		// Constant target matched by constant predictions.
		return 0, nil
	}

	return (lj - math.Min(a.lenY, lp)) / hi, nil
}
