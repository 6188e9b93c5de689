// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnsupported indicates an estimator or model kind the engine cannot
	// describe. Wrapped with the concrete Go type name.
	ErrUnsupported = errors.New("model: unsupported model")

	// ErrInvalidTree indicates a malformed node arena (dangling child index,
	// half-leaf, cycle or unreachable layout).
	ErrInvalidTree = errors.New("model: invalid decision tree")
)

// Kind enumerates the supported model kinds.
type Kind int

const (
	KindNaiveBayes Kind = iota
	KindDecisionTree
	KindLinearSVC
	KindPolySVC
	KindMLP
	KindLinearRegression
	KindLinearSVR
)

var kindNames = [...]string{
	KindNaiveBayes:       "NaiveBayes",
	KindDecisionTree:     "DecisionTree",
	KindLinearSVC:        "LinearSVC",
	KindPolySVC:          "PolySVC",
	KindMLP:              "MLP",
	KindLinearRegression: "LinearRegression",
	KindLinearSVR:        "LinearSVR",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Model is the structural description of a trained estimator.
// The set of implementations is closed.
type Model interface {
	Kind() Kind
	model()
}

// Estimator is the minimal learning-algorithm contract.
type Estimator interface {
	Fit(X mat.Matrix, y []float64) error
	Predict(X mat.Matrix) ([]float64, error)
}

// Predictor is the prediction half of Estimator.
type Predictor interface {
	Predict(X mat.Matrix) ([]float64, error)
}

// Describer yields the structural description of a fitted estimator.
type Describer interface {
	Describe() (Model, error)
}

// ProbaPredictor returns an n×k matrix of class membership probabilities,
// columns ordered like the classes the estimator was fit on.
type ProbaPredictor interface {
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

// Scorer returns the estimator's own goodness-of-fit score on (X, y).
type Scorer interface {
	Score(X mat.Matrix, y []float64) (float64, error)
}

// TreeEstimator is a cost-complexity prunable decision tree.
// PruningPath returns the effective alphas in ascending order
// (least pruned first).
type TreeEstimator interface {
	Estimator
	Describer
	PruningPath(X mat.Matrix, y []float64) ([]float64, error)
}

// SVCParams are the hyperparameters of a polynomial-kernel SVC:
// K(a,b) = (Gamma·⟨a,b⟩ + Coef0)^Degree, regularisation C.
type SVCParams struct {
	Degree int
	C      float64
	Gamma  float64
	Coef0  float64
}

// Factories build fresh, unfitted estimators for the search engine.
type (
	EstimatorFactory func() Estimator
	TreeFactory      func(alpha float64) TreeEstimator
	SVCFactory       func(params SVCParams) Estimator
	MLPFactory       func(hidden []int) Estimator
)

// Describe resolves est to its Model.
func Describe(est Estimator) (Model, error) {
	d, ok := est.(Describer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, est)
	}
	m, err := d.Describe()
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %T described as nil", ErrUnsupported, est)
	}

	return m, nil
}
