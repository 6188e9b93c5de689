// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/miscoding"
	"github.com/katalvlaran/nescience/model"
	"github.com/katalvlaran/nescience/nescience"
)

// Family is one model family: a name for the logs and a search strategy
// that returns its best State or ErrSkip.
type Family struct {
	Name string
	Run  func(e *Engine) (State, error)
}

// Engine scores candidates of one dataset with one fitted Nescience.
type Engine struct {
	ds   *dataset.Dataset
	nsc  *nescience.Nescience
	y    []float64
	opts Options
}

// NewEngine binds ds to nsc, which must already be fitted on ds.
func NewEngine(ds *dataset.Dataset, nsc *nescience.Nescience, opts ...Option) (*Engine, error) {
	if ds == nil {
		return nil, dataset.ErrNil
	}
	if nsc == nil {
		return nil, nescience.ErrNotFitted
	}
	if _, err := nsc.Miscoding(); err != nil {
		return nil, err
	}

	return &Engine{ds: ds, nsc: nsc, y: ds.Y(), opts: resolve(opts)}, nil
}

// Dataset returns the dataset the engine scores against.
func (e *Engine) Dataset() *dataset.Dataset { return e.ds }

// config hands the engine configuration on to the search loops.
func (e *Engine) config() Option {
	cfg := e.opts

	return func(o *Options) { *o = cfg }
}

// Ranking orders the features by decreasing adjusted miscoding, i.e. most
// relevant first.
func (e *Engine) Ranking() ([]int, error) {
	mis, err := e.nsc.Miscoding()
	if err != nil {
		return nil, err
	}
	adj, err := mis.Features(miscoding.Adjusted)
	if err != nil {
		return nil, err
	}

	return Ranking(adj), nil
}

// Fit trains est on the columns marked in viu (every column when viu is
// nil) and returns the matrix it was trained on.
func (e *Engine) Fit(est model.Estimator, viu dataset.ViU) (*mat.Dense, error) {
	X, err := e.ds.Select(viu)
	if err != nil {
		return nil, err
	}
	if err := est.Fit(X, e.y); err != nil {
		return nil, err
	}

	return X, nil
}

// Score scores an estimator already trained on X.
//
// With a nil viu the estimator's own attributes drive miscoding; otherwise
// miscoding is taken on viu and inaccuracy on the predictions over X.
func (e *Engine) Score(est model.Estimator, viu dataset.ViU, X mat.Matrix) (State, error) {
	var (
		score float64
		err   error
	)
	if viu == nil {
		score, err = e.nsc.Score(est, nescience.WithFeatures(X))
	} else {
		var pred []float64
		if pred, err = est.Predict(X); err != nil {
			return State{}, err
		}
		score, err = e.nsc.Score(est, nescience.WithSubset(viu), nescience.WithPredictions(pred))
	}
	if err != nil {
		return State{}, err
	}

	return State{Score: score, Estimator: est, ViU: viu.Clone()}, nil
}

// Evaluate is Fit followed by Score.
func (e *Engine) Evaluate(est model.Estimator, viu dataset.ViU) (State, error) {
	X, err := e.Fit(est, viu)
	if err != nil {
		return State{}, err
	}

	return e.Score(est, viu, X)
}

// Run evaluates families in order and returns the best State. A family
// replaces the incumbent only with a strictly smaller score, so ties keep
// the earlier family. ErrSkip is logged and ignored; any other error
// aborts the run.
func (e *Engine) Run(families ...Family) (State, error) {
	log := e.opts.Logger
	best := State{Score: e.opts.Ceiling}
	for _, fam := range families {
		st, err := fam.Run(e)
		if errors.Is(err, ErrSkip) {
			log.Info("family evaluated", "family", fam.Name, "skipped", true, "reason", err.Error())
			continue
		}
		if err != nil {
			return State{}, fmt.Errorf("search: family %s: %w", fam.Name, err)
		}
		log.Info("family evaluated", "family", fam.Name, "skipped", false, "score", st.Score)

		if st.Estimator != nil && st.Score < best.Score {
			st.Family = fam.Name
			best = st
		}
	}
	if best.Estimator == nil {
		return State{}, fmt.Errorf("%w: ceiling %g", ErrNoModel, e.opts.Ceiling)
	}
	log.Debug("search finished", "family", best.Family, "score", best.Score)

	return best, nil
}
