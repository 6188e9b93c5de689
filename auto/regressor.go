// SPDX-License-Identifier: MIT

package auto

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/search"
)

// Regressor selects the regressor family and feature subset with the
// lowest nescience.
type Regressor struct {
	selection
	opts Options
}

// NewRegressor returns an unfitted Regressor.
func NewRegressor(opts ...Option) *Regressor {
	return &Regressor{opts: resolve(opts)}
}

// Fit searches search.RegressorFamilies on (X, y).
func (r *Regressor) Fit(X mat.Matrix, y []float64) error {
	var dopts []dataset.Option
	if r.opts.FeatureKinds != nil {
		dopts = append(dopts, dataset.WithFeatureKinds(r.opts.FeatureKinds...))
	}
	ds, err := dataset.New(X, y, dopts...)
	if err != nil {
		return err
	}

	return r.run(ds, search.RegressorFamilies(r.opts.Factories), r.opts)
}

// Predict returns one value per row of X.
func (r *Regressor) Predict(X mat.Matrix) ([]float64, error) { return r.predict(X) }

// Score returns R² of Predict on (X, y).
func (r *Regressor) Score(X mat.Matrix, y []float64) (float64, error) { return r.rSquared(X, y) }
