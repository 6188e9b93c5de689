// SPDX-License-Identifier: MIT

package auto

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/search"
)

// TimeSeries selects an autoregressive, moving-average or exponential
// smoothing model for a univariate series.
type TimeSeries struct {
	selection
	opts Options
}

// NewTimeSeries returns an unfitted TimeSeries.
func NewTimeSeries(opts ...Option) *TimeSeries {
	return &TimeSeries{opts: resolve(opts)}
}

// Fit lag-embeds ts (see dataset.LagEmbed) and searches
// search.TimeSeriesFamilies on the result.
func (t *TimeSeries) Fit(ts []float64) error {
	X, y, err := dataset.LagEmbed(ts, t.opts.Window)
	if err != nil {
		return err
	}
	ds, err := dataset.New(X, y)
	if err != nil {
		return err
	}

	return t.run(ds, search.TimeSeriesFamilies(), t.opts)
}

// Window returns the lag window chosen at Fit, 0 before.
func (t *TimeSeries) Window() int { return t.p }

// Embed lag-embeds ts with the fitted window.
func (t *TimeSeries) Embed(ts []float64) (*mat.Dense, []float64, error) {
	if !t.fitted {
		return nil, nil, ErrNotFitted
	}

	return dataset.LagEmbed(ts, t.p)
}

// Predict returns the next value for every row of a lag matrix built by
// Embed.
func (t *TimeSeries) Predict(X mat.Matrix) ([]float64, error) { return t.predict(X) }

// Score lag-embeds ts with the fitted window and returns R² of the
// one-step-ahead predictions.
func (t *TimeSeries) Score(ts []float64) (float64, error) {
	X, y, err := t.Embed(ts)
	if err != nil {
		return 0, err
	}

	return t.rSquared(X, y)
}
