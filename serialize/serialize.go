// SPDX-License-Identifier: MIT

package serialize

import (
	"fmt"

	"github.com/katalvlaran/nescience/discretize"
	"github.com/katalvlaran/nescience/model"
)

// Model renders m as program text.
//
// Errors: model.ErrUnsupported for a nil model, model.ErrInvalidTree for a
// malformed tree, discretization errors for non-finite parameters.
func Model(m model.Model) (string, error) {
	var (
		b   Builder
		err error
	)
	switch v := m.(type) {
	case *model.NaiveBayes:
		err = naiveBayes(&b, v)
	case *model.DecisionTree:
		err = tree(&b, v)
	case *model.LinearSVC:
		err = linearSVC(&b, v)
	case *model.PolySVC:
		err = polySVC(&b, v)
	case *model.MLP:
		err = mlp(&b, v)
	case *model.LinearRegression:
		err = linearRegression(&b, v)
	case *model.LinearSVR:
		err = linearSVR(&b, v)
	default:
		return "", fmt.Errorf("%w: %T", model.ErrUnsupported, m)
	}
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

// codes discretizes a parameter vector; empty vectors stay empty.
func codes(v []float64) ([]int, error) {
	if len(v) == 0 {
		return []int{}, nil
	}
	c, err := discretize.Discretize(v)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	return c, nil
}

// codesWith discretizes v and tail as one vector so that a short tail
// (an intercept) is binned on the same scale as v.
func codesWith(v []float64, tail ...float64) ([]int, []int, error) {
	joint, err := codes(append(append([]float64(nil), v...), tail...))
	if err != nil {
		return nil, nil, err
	}

	return joint[:len(v)], joint[len(v):], nil
}

// codeRows discretizes all cells of a ragged matrix jointly and restores
// the row layout.
func codeRows(rows [][]float64) ([][]int, error) {
	flat := make([]float64, 0)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	c, err := codes(flat)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(rows))
	k := 0
	for i, r := range rows {
		out[i] = c[k : k+len(r)]
		k += len(r)
	}

	return out, nil
}

func naiveBayes(b *Builder, m *model.NaiveBayes) error {
	py, err := codes(m.ClassPrior)
	if err != nil {
		return err
	}
	theta, err := codeRows(m.FeatureProb)
	if err != nil {
		return err
	}

	b.Line(0, "def Bayes(X):")
	b.At(1).Code("py =").Ints(py).Newline()
	b.At(1).Code("theta =").IntRows(theta).Newline()
	b.At(1).Code("classes =").Floats(m.Classes).Newline()
	b.Line(1, "y_hat = None")
	b.Line(1, "max_prob = 0")
	b.Line(1, "for i in range(len(classes)):")
	b.Line(2, "prob = py[i]")
	b.Line(2, "for j in range(len(X)):")
	b.Line(3, "prob = prob * theta[i][j] ** X[j]")
	b.Line(2, "if prob > max_prob:")
	b.Line(3, "max_prob = prob")
	b.Line(3, "y_hat = classes[i]")
	b.Line(1, "return y_hat")

	return nil
}

func linearSVC(b *Builder, m *model.LinearSVC) error {
	coef, err := codeRows(m.Coef)
	if err != nil {
		return err
	}
	intercept, err := codes(m.Intercept)
	if err != nil {
		return err
	}

	b.Line(0, "def LinearSVC(X):")
	b.At(1).Code("M =").IntRows(coef).Newline()
	b.At(1).Code("intercept =").Ints(intercept).Newline()
	b.At(1).Code("classes =").Floats(m.Classes).Newline()
	b.Line(1, "y_hat = [None] * len(X)")
	b.Line(1, "for i in range(len(X)):")
	if len(m.Classes) <= 2 {
		b.Line(2, "prob = intercept[0]")
		b.Line(2, "for k in range(len(M[0])):")
		b.Line(3, "prob = prob + X[i][k] * M[0][k]")
		b.Line(2, "if prob > 0:")
		b.Line(3, "y_hat[i] = classes[1]")
		b.Line(2, "else:")
		b.Line(3, "y_hat[i] = classes[0]")
		b.Line(1, "return y_hat")

		return nil
	}

	b.Line(2, "votes = [0] * len(classes)")
	b.Line(2, "idx = 0")
	b.Line(2, "for j in range(len(classes)):")
	b.Line(3, "for l in range(j + 1, len(classes)):")
	b.Line(4, "prob = intercept[idx]")
	b.Line(4, "for k in range(len(M[idx])):")
	b.Line(5, "prob = prob + X[i][k] * M[idx][k]")
	b.Line(4, "if prob > 0:")
	b.Line(5, "votes[j] = votes[j] + 1")
	b.Line(4, "else:")
	b.Line(5, "votes[l] = votes[l] + 1")
	b.Line(4, "idx = idx + 1")
	voteArgmax(b, 2)
	b.Line(1, "return y_hat")

	return nil
}

func polySVC(b *Builder, m *model.PolySVC) error {
	// Intercepts share the bins of the dual coefficients.
	rows, err := codeRows(append(append([][]float64(nil), m.DualCoef...), m.Intercept))
	if err != nil {
		return err
	}
	dual, intercept := rows[:len(m.DualCoef)], rows[len(m.DualCoef)]
	sv, err := codeRows(m.SupportVectors)
	if err != nil {
		return err
	}
	multi := len(m.Classes) > 2

	b.Line(0, "def SVC(X):")
	b.At(1).Code("dual_coef =").IntRows(dual).Newline()
	b.At(1).Code("support_vectors =").IntRows(sv).Newline()
	b.At(1).Code("intercept =").Ints(intercept).Newline()
	b.At(1).Code("classes =").Floats(m.Classes).Newline()
	b.At(1).Code("n_support =").Ints(m.NSupport).Newline()
	if multi {
		start := make([]int, len(m.NSupport)+1)
		for c, n := range m.NSupport {
			start[c+1] = start[c] + n
		}
		b.At(1).Code("idx_support =").Ints(start).Newline()
	}
	b.At(1).Code("degree =").Int(m.Degree).Newline()
	b.At(1).Code("gamma =").Float(m.Gamma).Newline()
	b.At(1).Code("r =").Float(m.Coef0).Newline()
	b.Line(1, "y_hat = [None] * len(X)")
	b.Line(1, "for i in range(len(X)):")
	if !multi {
		b.Line(2, "prob = intercept[0]")
		b.Line(2, "for s in range(len(support_vectors)):")
		kernel(b, 3, "s")
		b.Line(3, "prob = prob + x * dual_coef[0][s]")
		b.Line(2, "if prob > 0:")
		b.Line(3, "y_hat[i] = classes[1]")
		b.Line(2, "else:")
		b.Line(3, "y_hat[i] = classes[0]")
		b.Line(1, "return y_hat")

		return nil
	}

	b.Line(2, "votes = [0] * len(classes)")
	b.Line(2, "idx = 0")
	b.Line(2, "for j in range(len(classes)):")
	b.Line(3, "for l in range(j + 1, len(classes)):")
	b.Line(4, "prob = intercept[idx]")
	b.Line(4, "for s in range(idx_support[j], idx_support[j + 1]):")
	kernel(b, 5, "s")
	b.Line(5, "prob = prob + x * dual_coef[l - 1][s]")
	b.Line(4, "for s in range(idx_support[l], idx_support[l + 1]):")
	kernel(b, 5, "s")
	b.Line(5, "prob = prob + x * dual_coef[j][s]")
	b.Line(4, "if prob > 0:")
	b.Line(5, "votes[j] = votes[j] + 1")
	b.Line(4, "else:")
	b.Line(5, "votes[l] = votes[l] + 1")
	b.Line(4, "idx = idx + 1")
	voteArgmax(b, 2)
	b.Line(1, "return y_hat")

	return nil
}

// kernel writes x = (gamma·⟨sv, X[i]⟩ + r)^degree for support vector sv.
func kernel(b *Builder, d int, sv string) {
	b.Line(d, "dot = 0")
	b.Line(d, "for k in range(len(X[i])):")
	b.Line(d+1, "dot = dot + support_vectors["+sv+"][k] * X[i][k]")
	b.Line(d, "x = (gamma * dot + r) ** degree")
}

func voteArgmax(b *Builder, d int) {
	b.Line(d, "best = 0")
	b.Line(d, "for k in range(len(votes)):")
	b.Line(d+1, "if votes[k] > votes[best]:")
	b.Line(d+2, "best = k")
	b.Line(d, "y_hat[i] = classes[best]")
}

func mlp(b *Builder, m *model.MLP) error {
	var weights [][]float64
	for _, layer := range m.Weights {
		weights = append(weights, layer...)
	}
	wc, err := codeRows(weights)
	if err != nil {
		return err
	}
	bc, err := codeRows(m.Biases)
	if err != nil {
		return err
	}

	b.Line(0, "def NN(X):")
	b.At(1).Code("W =").Symbol("[")
	k := 0
	for l, layer := range m.Weights {
		if l > 0 {
			b.Symbol(",")
		}
		b.IntRows(wc[k : k+len(layer)])
		k += len(layer)
	}
	b.Symbol("]").Newline()
	b.At(1).Code("b =").IntRows(bc).Newline()
	if !m.Regression {
		b.At(1).Code("classes =").Floats(m.Classes).Newline()
	}
	b.Line(1, "A = X")
	b.Line(1, "for l in range(len(W)):")
	b.Line(2, "Z = [0] * len(b[l])")
	b.Line(2, "for j in range(len(b[l])):")
	b.Line(3, "for k in range(len(A)):")
	b.Line(4, "Z[j] = Z[j] + A[k] * W[l][k][j]")
	b.Line(3, "Z[j] = Z[j] + b[l][j]")
	b.Line(2, "if l < len(W) - 1:")
	b.Line(3, "A = [max(z, 0) for z in Z]")
	b.Line(2, "else:")
	b.Line(3, "A = Z")
	if m.Regression {
		b.Line(1, "return A[0]")

		return nil
	}
	b.Line(1, "best = 0")
	b.Line(1, "for j in range(len(A)):")
	b.Line(2, "if A[j] > A[best]:")
	b.Line(3, "best = j")
	b.Line(1, "return classes[best]")

	return nil
}

func linearRegression(b *Builder, m *model.LinearRegression) error {
	coef, intercept, err := codesWith(m.Coef, m.Intercept)
	if err != nil {
		return err
	}

	b.Line(0, "def LinearRegression(X):")
	b.At(1).Code("W =").Ints(coef).Newline()
	b.At(1).Code("b =").Int(intercept[0]).Newline()
	b.Line(1, "y_hat = b")
	b.Line(1, "for i in range(len(W)):")
	b.Line(2, "y_hat = y_hat + W[i] * X[i]")
	b.Line(1, "return y_hat")

	return nil
}

func linearSVR(b *Builder, m *model.LinearSVR) error {
	coef, intercept, err := codesWith(m.Coef, m.Intercept)
	if err != nil {
		return err
	}

	b.Line(0, "def LinearSVR(X):")
	b.At(1).Code("M =").Ints(coef).Newline()
	b.At(1).Code("b =").Int(intercept[0]).Newline()
	b.Line(1, "y_hat = b")
	b.Line(1, "for k in range(len(M)):")
	b.Line(2, "y_hat = y_hat + X[k] * M[k]")
	b.Line(1, "return y_hat")

	return nil
}
