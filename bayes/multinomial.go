// SPDX-License-Identifier: MIT

package bayes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/model"
)

var (
	// ErrNotFitted indicates a query before Fit.
	ErrNotFitted = errors.New("bayes: not fitted")

	// ErrNegative indicates a negative feature value.
	ErrNegative = errors.New("bayes: negative feature value")

	// ErrShape indicates mismatched dimensions.
	ErrShape = errors.New("bayes: shape mismatch")
)

// DefaultAlpha is the additive smoothing constant.
const DefaultAlpha = 1.0

// Option configures a Multinomial.
type Option func(*Multinomial)

// WithAlpha sets the smoothing constant (> 0).
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("bayes: WithAlpha: alpha must be > 0")
	}

	return func(m *Multinomial) { m.alpha = alpha }
}

// Multinomial is a multinomial naive Bayes classifier.
type Multinomial struct {
	alpha    float64
	classes  []float64
	logPrior []float64   // per class
	logTheta [][]float64 // classes × features
	features int
}

// NewMultinomial returns an unfitted classifier.
func NewMultinomial(opts ...Option) *Multinomial {
	m := &Multinomial{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Fit estimates class priors and per-class feature distributions.
//
// Complexity: O(n·p).
func (m *Multinomial) Fit(X mat.Matrix, y []float64) error {
	n, p := X.Dims()
	if n != len(y) || n == 0 {
		return fmt.Errorf("%w: %d rows, %d targets", ErrShape, n, len(y))
	}

	classes, inverse := dataset.UniqueInverse(y)
	k := len(classes)
	counts := make([]float64, k)
	feat := make([][]float64, k)
	for c := range feat {
		feat[c] = make([]float64, p)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		c := inverse[i]
		counts[c]++
		for j = 0; j < p; j++ {
			v = X.At(i, j)
			if v < 0 {
				return fmt.Errorf("%w: X[%d,%d]=%g", ErrNegative, i, j, v)
			}
			feat[c][j] += v
		}
	}

	m.classes = classes
	m.features = p
	m.logPrior = make([]float64, k)
	m.logTheta = make([][]float64, k)
	for c := 0; c < k; c++ {
		m.logPrior[c] = math.Log(counts[c] / float64(n))
		total := floats.Sum(feat[c]) + m.alpha*float64(p)
		m.logTheta[c] = make([]float64, p)
		for j = 0; j < p; j++ {
			m.logTheta[c][j] = math.Log((feat[c][j] + m.alpha) / total)
		}
	}

	return nil
}

// jointLog returns the n×k matrix of unnormalised log posteriors.
func (m *Multinomial) jointLog(X mat.Matrix) (*mat.Dense, error) {
	if m.classes == nil {
		return nil, ErrNotFitted
	}
	n, p := X.Dims()
	if p != m.features {
		return nil, fmt.Errorf("%w: %d features, fitted on %d", ErrShape, p, m.features)
	}

	k := len(m.classes)
	out := mat.NewDense(n, k, nil)
	row := make([]float64, p)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		for c := 0; c < k; c++ {
			out.Set(i, c, m.logPrior[c]+floats.Dot(row, m.logTheta[c]))
		}
	}

	return out, nil
}

// Predict returns the most probable class label per row.
func (m *Multinomial) Predict(X mat.Matrix) ([]float64, error) {
	jl, err := m.jointLog(X)
	if err != nil {
		return nil, err
	}
	n, _ := jl.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.classes[floats.MaxIdx(jl.RawRowView(i))]
	}

	return out, nil
}

// PredictProba returns the n×k posterior matrix, columns ordered like
// Classes.
func (m *Multinomial) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	jl, err := m.jointLog(X)
	if err != nil {
		return nil, err
	}
	n, _ := jl.Dims()
	for i := 0; i < n; i++ {
		row := jl.RawRowView(i)
		lse := floats.LogSumExp(row)
		for c := range row {
			row[c] = math.Exp(row[c] - lse)
		}
	}

	return jl, nil
}

// Score returns the mean accuracy on (X, y).
func (m *Multinomial) Score(X mat.Matrix, y []float64) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d rows, %d targets", ErrShape, len(pred), len(y))
	}
	hits := 0
	for i := range pred {
		if pred[i] == y[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(y)), nil
}

// Classes returns a copy of the sorted class labels.
func (m *Multinomial) Classes() []float64 { return append([]float64(nil), m.classes...) }

// Describe implements model.Describer.
func (m *Multinomial) Describe() (model.Model, error) {
	if m.classes == nil {
		return nil, ErrNotFitted
	}
	k := len(m.classes)
	prior := make([]float64, k)
	theta := make([][]float64, k)
	for c := 0; c < k; c++ {
		prior[c] = math.Exp(m.logPrior[c])
		theta[c] = make([]float64, m.features)
		for j, lt := range m.logTheta[c] {
			theta[c][j] = math.Exp(lt)
		}
	}

	return &model.NaiveBayes{Classes: m.Classes(), ClassPrior: prior, FeatureProb: theta}, nil
}
