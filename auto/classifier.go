// SPDX-License-Identifier: MIT

package auto

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/model"
	"github.com/katalvlaran/nescience/search"
)

// Classifier selects the classifier family, hyperparameters and feature
// subset with the lowest nescience.
type Classifier struct {
	selection
	opts    Options
	classes []float64
}

// NewClassifier returns an unfitted Classifier.
func NewClassifier(opts ...Option) *Classifier {
	return &Classifier{opts: resolve(opts)}
}

// Fit searches search.ClassifierFamilies on (X, y). Labels are any float
// codes; candidates are trained on their indices in the sorted class
// table.
func (c *Classifier) Fit(X mat.Matrix, y []float64) error {
	classes, inverse := dataset.UniqueInverse(y)
	codes := make([]float64, len(inverse))
	for i, k := range inverse {
		codes[i] = float64(k)
	}

	dopts := []dataset.Option{dataset.WithTargetKind(dataset.Categorical)}
	if c.opts.FeatureKinds != nil {
		dopts = append(dopts, dataset.WithFeatureKinds(c.opts.FeatureKinds...))
	}
	ds, err := dataset.New(X, codes, dopts...)
	if err != nil {
		return err
	}
	if err = c.run(ds, search.ClassifierFamilies(c.opts.Factories), c.opts); err != nil {
		return err
	}
	c.classes = classes

	return nil
}

// Classes returns the sorted class table.
func (c *Classifier) Classes() []float64 { return append([]float64(nil), c.classes...) }

// Predict returns one class label per row of X.
func (c *Classifier) Predict(X mat.Matrix) ([]float64, error) {
	codes, err := c.predict(X)
	if err != nil {
		return nil, err
	}
	labels := make([]float64, len(codes))
	for i, v := range codes {
		k := int(math.Round(v))
		if k < 0 || k >= len(c.classes) {
			return nil, fmt.Errorf("%w: %g", ErrUnknownClass, v)
		}
		labels[i] = c.classes[k]
	}

	return labels, nil
}

// PredictProba returns an n×k matrix of class probabilities, columns in
// Classes order. Fails with ErrNoProba when the winning estimator has no
// probability output.
func (c *Classifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	sel, err := c.columns(X)
	if err != nil {
		return nil, err
	}
	pp, ok := c.best.Estimator.(model.ProbaPredictor)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoProba, c.best.Estimator)
	}

	return pp.PredictProba(sel)
}

// Score returns the accuracy of Predict on (X, y).
func (c *Classifier) Score(X mat.Matrix, y []float64) (float64, error) {
	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) || len(y) == 0 {
		return 0, fmt.Errorf("%w: %d predictions, %d labels", dataset.ErrShape, len(pred), len(y))
	}
	hits := 0
	for i := range y {
		if pred[i] == y[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(y)), nil
}
