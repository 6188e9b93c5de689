// SPDX-License-Identifier: MIT

package auto

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/nescience"
	"github.com/katalvlaran/nescience/search"
)

// selection is the outcome of one search: the winning State and the
// feature count it was fitted against.
type selection struct {
	best   search.State
	p      int
	fitted bool
}

// run scores families over ds and records the winner.
func (s *selection) run(ds *dataset.Dataset, families []search.Family, cfg Options) error {
	nsc := nescience.New(cfg.Nescience...)
	if err := nsc.Fit(ds); err != nil {
		return err
	}
	engine, err := search.NewEngine(ds, nsc,
		search.WithLogger(cfg.Logger),
		search.WithParallelism(cfg.Parallelism))
	if err != nil {
		return err
	}
	best, err := engine.Run(families...)
	if err != nil {
		return err
	}
	cfg.Logger.Info("model selected", "family", best.Family, "score", best.Score, "features", featureCount(best.ViU, ds.Features()))

	s.best, s.p, s.fitted = best, ds.Features(), true

	return nil
}

// Best returns the winning State.
func (s *selection) Best() (search.State, error) {
	if !s.fitted {
		return search.State{}, ErrNotFitted
	}

	return s.best, nil
}

// columns restricts X to the winning mask.
func (s *selection) columns(X mat.Matrix) (mat.Matrix, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if s.best.ViU == nil {
		if _, p := X.Dims(); p != s.p {
			return nil, fmt.Errorf("%w: %d features, fitted on %d", dataset.ErrShape, p, s.p)
		}

		return X, nil
	}

	return dataset.SelectColumns(X, s.best.ViU)
}

func (s *selection) predict(X mat.Matrix) ([]float64, error) {
	sel, err := s.columns(X)
	if err != nil {
		return nil, err
	}

	return s.best.Estimator.Predict(sel)
}

// rSquared is the coefficient of determination of the winner on (X, y).
func (s *selection) rSquared(X mat.Matrix, y []float64) (float64, error) {
	pred, err := s.predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d predictions, %d targets", dataset.ErrShape, len(pred), len(y))
	}

	return stat.RSquaredFrom(pred, y, nil), nil
}

func featureCount(viu dataset.ViU, p int) int {
	if viu == nil {
		return p
	}

	return viu.Count()
}
