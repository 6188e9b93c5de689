// SPDX-License-Identifier: MIT

package linear

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nescience/model"
)

var (
	// ErrNotFitted indicates Predict/Score/Describe before Fit.
	ErrNotFitted = errors.New("linear: not fitted")

	// ErrShape indicates mismatched X / y / coefficient dimensions.
	ErrShape = errors.New("linear: shape mismatch")

	// ErrSolve indicates a failed SVD factorization.
	ErrSolve = errors.New("linear: least squares solve failed")
)

// rcond is the relative singular-value cutoff for the rank decision.
const rcond = 1e-12

// Regression is an OLS linear regressor.
type Regression struct {
	coef      []float64
	intercept float64
	fitted    bool
	fixed     bool
}

// NewRegression returns an unfitted OLS regressor.
func NewRegression() *Regression { return &Regression{} }

// NewFixed returns a regressor with the given coefficients. It is ready to
// predict; Fit only validates the feature count.
func NewFixed(coef []float64, intercept float64) *Regression {
	return &Regression{
		coef:      append([]float64(nil), coef...),
		intercept: intercept,
		fitted:    true,
		fixed:     true,
	}
}

// Fit solves min ‖[1 X]·β − y‖₂.
//
// Complexity: O(n·p²) for the thin SVD.
func (r *Regression) Fit(X mat.Matrix, y []float64) error {
	n, p := X.Dims()
	if n != len(y) {
		return fmt.Errorf("%w: %d rows, %d targets", ErrShape, n, len(y))
	}
	if r.fixed {
		if p != len(r.coef) {
			return fmt.Errorf("%w: %d features, %d fixed coefficients", ErrShape, p, len(r.coef))
		}

		return nil
	}

	// Stage 1: design matrix with a leading column of ones.
	A := mat.NewDense(n, p+1, nil)
	var i, j int
	for i = 0; i < n; i++ {
		A.Set(i, 0, 1)
		for j = 0; j < p; j++ {
			A.Set(i, j+1, X.At(i, j))
		}
	}

	// Stage 2: minimum-norm least squares through the SVD.
	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return ErrSolve
	}
	var beta mat.Dense
	svd.SolveTo(&beta, mat.NewVecDense(n, append([]float64(nil), y...)), svd.Rank(rcond))

	r.intercept = beta.At(0, 0)
	r.coef = make([]float64, p)
	for j = 0; j < p; j++ {
		r.coef[j] = beta.At(j+1, 0)
	}
	r.fitted = true

	return nil
}

// Predict returns Coef·x + Intercept for every row of X.
func (r *Regression) Predict(X mat.Matrix) ([]float64, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}
	n, p := X.Dims()
	if p != len(r.coef) {
		return nil, fmt.Errorf("%w: %d features, %d coefficients", ErrShape, p, len(r.coef))
	}

	out := make([]float64, n)
	row := make([]float64, p)
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		out[i] = floats.Dot(r.coef, row) + r.intercept
	}

	return out, nil
}

// Score returns the coefficient of determination R² on (X, y).
func (r *Regression) Score(X mat.Matrix, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d rows, %d targets", ErrShape, len(pred), len(y))
	}

	return stat.RSquaredFrom(pred, y, nil), nil
}

// Describe implements model.Describer.
func (r *Regression) Describe() (model.Model, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}

	return &model.LinearRegression{Coef: r.Coef(), Intercept: r.intercept}, nil
}

// Coef returns a copy of the coefficients.
func (r *Regression) Coef() []float64 { return append([]float64(nil), r.coef...) }

// Intercept returns the intercept.
func (r *Regression) Intercept() float64 { return r.intercept }
