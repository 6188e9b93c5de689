// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nescience/bayes"
	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/linear"
	"github.com/katalvlaran/nescience/model"
)

// Default polynomial SVC starting point.
const (
	DefaultDegree = 5
	DefaultC      = 1.0
	DefaultCoef0  = 1.0
)

// DefaultSmoothing is the exponential smoothing factor of ExpSmoothing.
const DefaultSmoothing = 0.2

// Factories are the estimator constructors families draw from. A nil
// factory makes its family skip.
type Factories struct {
	NaiveBayes model.EstimatorFactory
	Tree       model.TreeFactory
	LinearSVC  model.EstimatorFactory
	SVC        model.SVCFactory
	MLP        model.MLPFactory
	Linear     model.EstimatorFactory
	LinearSVR  model.EstimatorFactory
}

// DefaultFactories wires the in-module estimators: multinomial naive
// Bayes and least-squares regression. The remaining factories are nil.
func DefaultFactories() Factories {
	return Factories{
		NaiveBayes: func() model.Estimator { return bayes.NewMultinomial() },
		Linear:     func() model.Estimator { return linear.NewRegression() },
	}
}

// ClassifierFamilies returns, in order: NaiveBayes, DecisionTree,
// LinearSVC, PolySVC, MLP.
func ClassifierFamilies(f Factories) []Family {
	return []Family{
		NaiveBayes(f.NaiveBayes),
		DecisionTree(f.Tree),
		LinearSVC(f.LinearSVC),
		PolySVC(f.SVC),
		MLP(f.MLP),
	}
}

// RegressorFamilies returns, in order: LinearRegression, LinearSVR,
// DecisionTree, MLP.
func RegressorFamilies(f Factories) []Family {
	return []Family{
		LinearRegression(f.Linear),
		LinearSVR(f.LinearSVR),
		DecisionTree(f.Tree),
		MLP(f.MLP),
	}
}

// TimeSeriesFamilies returns, in order: AutoRegressive, MovingAverage,
// ExpSmoothing. They expect a lag-embedded dataset whose last column is
// the most recent observation.
func TimeSeriesFamilies() []Family {
	return []Family{
		AutoRegressive(),
		MovingAverage(),
		ExpSmoothing(DefaultSmoothing),
	}
}

func missing(name string) error { return fmt.Errorf("%w: no %s factory", ErrSkip, name) }

// NaiveBayes fits one multinomial model on every feature. Skips when any
// feature value is negative.
func NaiveBayes(f model.EstimatorFactory) Family {
	return Family{Name: "NaiveBayes", Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing("naive Bayes")
		}
		if !e.ds.NonNegative() {
			return State{}, fmt.Errorf("%w: negative feature values", ErrSkip)
		}

		return e.Evaluate(f(), nil)
	}}
}

// LinearSVC fits one linear support vector classifier on every feature.
func LinearSVC(f model.EstimatorFactory) Family {
	return single("LinearSVC", "linear SVC", f)
}

// LinearSVR fits one linear support vector regressor on every feature.
func LinearSVR(f model.EstimatorFactory) Family {
	return single("LinearSVR", "linear SVR", f)
}

func single(name, what string, f model.EstimatorFactory) Family {
	return Family{Name: name, Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing(what)
		}

		return e.Evaluate(f(), nil)
	}}
}

// DecisionTree walks the cost-complexity pruning path of a tree fitted on
// every feature; see PruningWalk.
func DecisionTree(f model.TreeFactory) Family {
	return Family{Name: "DecisionTree", Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing("decision tree")
		}
		alphas, err := f(0).PruningPath(e.ds.X(), e.y)
		if err != nil {
			return State{}, err
		}

		return PruningWalk(alphas, func(alpha float64) (int, func() (State, error), error) {
			est := f(alpha)
			X, err := e.Fit(est, nil)
			if err != nil {
				return 0, nil, err
			}
			m, err := est.Describe()
			if err != nil {
				return 0, nil, err
			}
			tree, ok := m.(*model.DecisionTree)
			if !ok {
				return 0, nil, fmt.Errorf("%w: tree estimator described as %T", model.ErrUnsupported, m)
			}

			return tree.Size(), func() (State, error) { return e.Score(est, nil, X) }, nil
		})
	}}
}

// PolySVC runs CoordinateSearch over degree, C, gamma and coef0 of a
// polynomial-kernel SVC fitted on every feature. gamma starts at
// 1/(p·Var(X)) over all cells of X; coef0 may change sign.
func PolySVC(f model.SVCFactory) Family {
	return Family{Name: "PolySVC", Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing("SVC")
		}
		tiny := math.SmallestNonzeroFloat64
		params := []Param{
			{Name: "degree", Value: DefaultDegree, Min: 1, Max: math.Inf(1), Kind: Integer},
			{Name: "C", Value: DefaultC, Min: tiny, Max: math.Inf(1), Kind: Scale},
			{Name: "gamma", Value: scaleGamma(e.ds.X()), Min: tiny, Max: math.Inf(1), Kind: Scale},
			{Name: "coef0", Value: DefaultCoef0, Min: math.Inf(-1), Max: math.Inf(1), Kind: Scale, Negatable: true},
		}
		eval := func(v []float64) (State, error) {
			return e.Evaluate(f(model.SVCParams{Degree: int(v[0]), C: v[1], Gamma: v[2], Coef0: v[3]}), nil)
		}
		_, st, err := CoordinateSearch(params, eval, e.config())

		return st, err
	}}
}

// scaleGamma is 1/(p·Var(X)), or 1 when X is constant.
func scaleGamma(X mat.Matrix) float64 {
	_, p := X.Dims()
	cells := mat.DenseCopyOf(X).RawMatrix().Data
	v := stat.PopVariance(cells, nil)
	if v == 0 {
		return 1
	}

	return 1 / (float64(p) * v)
}

// MLP grows a multilayer perceptron; see GrowNetwork.
func MLP(f model.MLPFactory) Family {
	return Family{Name: "MLP", Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing("MLP")
		}
		ranking, err := e.Ranking()
		if err != nil {
			return State{}, err
		}
		build := func(viu dataset.ViU, hidden []int) (State, error) {
			return e.Evaluate(f(hidden), viu)
		}

		return GrowNetwork(ranking, e.ds.Features(), build, e.config())
	}}
}

// LinearRegression forward-selects features for a least-squares fit.
func LinearRegression(f model.EstimatorFactory) Family {
	return Family{Name: "LinearRegression", Run: func(e *Engine) (State, error) {
		if f == nil {
			return State{}, missing("linear regression")
		}

		return forward(e, f)
	}}
}

// AutoRegressive forward-selects lags for a least-squares fit.
func AutoRegressive() Family {
	return Family{Name: "AutoRegressive", Run: func(e *Engine) (State, error) {
		return forward(e, func() model.Estimator { return linear.NewRegression() })
	}}
}

func forward(e *Engine, f model.EstimatorFactory) (State, error) {
	ranking, err := e.Ranking()
	if err != nil {
		return State{}, err
	}
	build := func(viu dataset.ViU, _ []int) (State, error) {
		return e.Evaluate(f(), viu)
	}

	return ForwardSelect(ranking, e.ds.Features(), build, e.config())
}

// MovingAverage averages the last i observations with fixed weights 1/i.
func MovingAverage() Family {
	return Family{Name: "MovingAverage", Run: func(e *Engine) (State, error) {
		return window(e, func(i int) float64 { return 1 / float64(i) })
	}}
}

// ExpSmoothing weights the last i observations with (1 − alpha)^i.
// Panics if alpha is outside (0, 1).
func ExpSmoothing(alpha float64) Family {
	if !(alpha > 0 && alpha < 1) {
		panic("search: ExpSmoothing(alpha) requires 0 < alpha < 1")
	}

	return Family{Name: "ExpSmoothing", Run: func(e *Engine) (State, error) {
		return window(e, func(i int) float64 { return math.Pow(1-alpha, float64(i)) })
	}}
}

// window scores fixed-weight linear models over a growing window of the
// most recent lags: first lag 1 alone with weight 1, then lags 1..i with
// weight(i) each for i = 2..p−2. A window that does not score worse than
// the previous one replaces it; the first worse window ends the walk.
func window(e *Engine, weight func(i int) float64) (State, error) {
	p := e.ds.Features()
	viu := dataset.NewViU(p).With(p - 1)
	cur, err := e.Evaluate(linear.NewFixed([]float64{1}, 0), viu)
	if err != nil {
		return State{}, err
	}

	var (
		i    int
		cand State
	)
	for i = 2; i < p-1; i++ {
		coef := make([]float64, i)
		for k := range coef {
			coef[k] = weight(i)
		}
		if cand, err = e.Evaluate(linear.NewFixed(coef, 0), cur.ViU.With(p-i)); err != nil {
			return State{}, err
		}
		if cand.Score > cur.Score {
			break
		}
		cur = cand
	}

	return cur, nil
}
