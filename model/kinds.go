// SPDX-License-Identifier: MIT

package model

// NaiveBayes is a multinomial naive Bayes classifier.
//   - ClassPrior[c]     = P(y = Classes[c])
//   - FeatureProb[c][j] = P(x_j | y = Classes[c])
type NaiveBayes struct {
	Classes     []float64
	ClassPrior  []float64
	FeatureProb [][]float64
}

// LinearSVC is a linear support vector classifier. Binary problems carry
// one row of Coef; k > 2 classes carry k(k-1)/2 one-vs-one rows.
type LinearSVC struct {
	Classes   []float64
	Coef      [][]float64
	Intercept []float64
}

// PolySVC is a polynomial-kernel support vector classifier in one-vs-one
// layout. SupportVectors are grouped by class; NSupport[c] counts the
// vectors of class c. DualCoef has k-1 rows, one column per support vector.
type PolySVC struct {
	Classes        []float64
	DualCoef       [][]float64
	SupportVectors [][]float64
	NSupport       []int
	Intercept      []float64
	Degree         int
	Gamma          float64
	Coef0          float64
}

// MLP is a fully connected ReLU network. Weights[l] is in×out for layer l,
// Biases[l] has out entries. Classifiers list their Classes; regressors
// leave Classes nil and set Regression.
type MLP struct {
	Weights    [][][]float64
	Biases     [][]float64
	Classes    []float64
	Regression bool
}

// LinearRegression is y = Coef·x + Intercept.
type LinearRegression struct {
	Coef      []float64
	Intercept float64
}

// LinearSVR is a linear support vector regressor, y = Coef·x + Intercept.
type LinearSVR struct {
	Coef      []float64
	Intercept float64
}

func (*NaiveBayes) Kind() Kind       { return KindNaiveBayes }
func (*DecisionTree) Kind() Kind     { return KindDecisionTree }
func (*LinearSVC) Kind() Kind        { return KindLinearSVC }
func (*PolySVC) Kind() Kind          { return KindPolySVC }
func (*MLP) Kind() Kind              { return KindMLP }
func (*LinearRegression) Kind() Kind { return KindLinearRegression }
func (*LinearSVR) Kind() Kind        { return KindLinearSVR }

func (*NaiveBayes) model()       {}
func (*DecisionTree) model()     {}
func (*LinearSVC) model()        {}
func (*PolySVC) model()          {}
func (*MLP) model()              {}
func (*LinearRegression) model() {}
func (*LinearSVR) model()        {}
