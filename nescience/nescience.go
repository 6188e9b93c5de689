// SPDX-License-Identifier: MIT

package nescience

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/inaccuracy"
	"github.com/katalvlaran/nescience/miscoding"
	"github.com/katalvlaran/nescience/model"
	"github.com/katalvlaran/nescience/surfeit"
)

// Components are the three clamped inputs of the aggregation.
type Components struct {
	Miscoding  float64
	Inaccuracy float64
	Surfeit    float64
}

type scoreConfig struct {
	subset      dataset.ViU
	predictions []float64
	modelString string
	features    mat.Matrix
}

// ScoreOption supplies a precomputed input to Score.
type ScoreOption func(*scoreConfig)

// WithSubset scores miscoding on viu instead of the model's attributes.
func WithSubset(viu dataset.ViU) ScoreOption {
	return func(c *scoreConfig) { c.subset = viu.Clone() }
}

// WithPredictions scores inaccuracy on pred instead of predicting.
func WithPredictions(pred []float64) ScoreOption {
	return func(c *scoreConfig) { c.predictions = append([]float64(nil), pred...) }
}

// WithModelString scores surfeit on s instead of serializing the model.
func WithModelString(s string) ScoreOption {
	return func(c *scoreConfig) { c.modelString = s }
}

// WithFeatures sets the matrix the estimator predicts on; used when the
// estimator was trained on a column subset.
func WithFeatures(X mat.Matrix) ScoreOption {
	return func(c *scoreConfig) { c.features = X }
}

// Nescience owns one fitted Miscoding, Inaccuracy and Surfeit.
type Nescience struct {
	opts Options
	mis  *miscoding.Miscoding
	acc  *inaccuracy.Inaccuracy
	sur  *surfeit.Surfeit
}

// New returns an unfitted Nescience.
func New(opts ...Option) *Nescience {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Nescience{opts: cfg}
}

// Fit prepares the three components for ds.
func (n *Nescience) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return dataset.ErrNil
	}
	mis := miscoding.New(miscoding.WithRule(n.opts.Rule))
	if err := mis.Fit(ds); err != nil {
		return err
	}
	acc := inaccuracy.New(inaccuracy.WithRule(n.opts.Rule))
	if err := acc.Fit(ds); err != nil {
		return err
	}
	sur := surfeit.New(surfeit.WithCompressor(n.opts.Compressor), surfeit.WithRule(n.opts.Rule))
	if err := sur.Fit(ds); err != nil {
		return err
	}
	n.mis, n.acc, n.sur = mis, acc, sur

	return nil
}

// Miscoding exposes the fitted miscoding, e.g. for feature ranking.
func (n *Nescience) Miscoding() (*miscoding.Miscoding, error) {
	if n.mis == nil {
		return nil, ErrNotFitted
	}

	return n.mis, nil
}

// Score returns the aggregated nescience of est, floored at 0.
func (n *Nescience) Score(est model.Estimator, opts ...ScoreOption) (float64, error) {
	c, err := n.Components(est, opts...)
	if err != nil {
		return 0, err
	}

	return math.Max(0, Aggregate(n.opts.Method, c)), nil
}

// Components computes and clamps the three inputs of Score.
func (n *Nescience) Components(est model.Estimator, opts ...ScoreOption) (Components, error) {
	if n.mis == nil {
		return Components{}, ErrNotFitted
	}
	var cfg scoreConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if est == nil && (cfg.subset == nil || cfg.predictions == nil || cfg.modelString == "") {
		return Components{}, ErrMissingModel
	}

	// The structural description is resolved once and only when needed.
	var (
		desc model.Model
		err  error
	)
	if cfg.subset == nil || cfg.modelString == "" {
		if desc, err = model.Describe(est); err != nil {
			return Components{}, err
		}
	}

	var c Components
	if cfg.subset != nil {
		c.Miscoding, err = n.mis.Subset(cfg.subset)
	} else {
		c.Miscoding, err = n.mis.Model(desc)
	}
	if err != nil {
		return Components{}, err
	}

	if cfg.predictions != nil {
		c.Inaccuracy, err = n.acc.Predictions(cfg.predictions)
	} else {
		c.Inaccuracy, err = n.acc.Model(est, cfg.features)
	}
	if err != nil {
		return Components{}, err
	}

	if cfg.modelString != "" {
		c.Surfeit, err = n.sur.String(cfg.modelString)
	} else {
		c.Surfeit, err = n.sur.Model(desc)
	}
	if err != nil {
		return Components{}, err
	}

	return n.clamp(c), nil
}

func (n *Nescience) clamp(c Components) Components {
	eps := n.opts.Epsilon
	if c.Miscoding <= 0 {
		c.Miscoding = eps
	}
	if c.Inaccuracy <= 0 {
		c.Inaccuracy = eps
	}
	if c.Surfeit <= 0 {
		c.Surfeit = eps
	}
	if c.Surfeit < c.Inaccuracy {
		c.Surfeit = 1
	}

	return c
}

// Aggregate combines already clamped components with method m.
// Unknown methods yield NaN.
func Aggregate(m Method, c Components) float64 {
	mi, in, su := c.Miscoding, c.Inaccuracy, c.Surfeit
	switch m {
	case Euclid:
		return math.Sqrt(mi*mi + in*in + su*su)
	case Arithmetic:
		return (mi + in + su) / 3
	case Geometric:
		return math.Cbrt(mi * in * su)
	case Product:
		return mi * in * su
	case Addition:
		return mi + in + su
	case Harmonic:
		return 3 / (1/mi + 1/in + 1/su)
	default:
		return math.NaN()
	}
}
