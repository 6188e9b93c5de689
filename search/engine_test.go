// SPDX-License-Identifier: MIT

package search_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/linear"
	"github.com/katalvlaran/nescience/model"
	"github.com/katalvlaran/nescience/nescience"
	"github.com/katalvlaran/nescience/search"
)

// linearTarget builds y = 2·x0 + 1 over three uniform features.
func linearTarget(n int, seed int64) *dataset.Dataset {
	rng := rand.New(rand.NewSource(seed))
	X := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			X.Set(i, j, rng.Float64())
		}
		y[i] = 2*X.At(i, 0) + 1
	}
	ds, err := dataset.New(X, y)
	if err != nil {
		panic(err)
	}

	return ds
}

// echo memorises the targets it is fitted on and predicts them back.
type echo struct {
	p int
	y []float64
}

func (e *echo) Fit(X mat.Matrix, y []float64) error {
	_, e.p = X.Dims()
	e.y = append([]float64(nil), y...)

	return nil
}

func (e *echo) Predict(mat.Matrix) ([]float64, error) { return e.y, nil }

func (e *echo) Describe() (model.Model, error) {
	return &model.LinearRegression{Coef: make([]float64, e.p)}, nil
}

// chain builds a right-leaning regression tree of the given odd size whose
// splits all test feature 0.
func chain(nodes int) []model.TreeNode {
	splits := (nodes - 1) / 2
	out := make([]model.TreeNode, 0, nodes)
	for s := 0; s < splits; s++ {
		out = append(out,
			model.TreeNode{Feature: 0, Threshold: float64(s+1) / float64(splits+1), Left: 2*s + 1, Right: 2*s + 2},
			model.TreeNode{Left: model.Leaf, Right: model.Leaf, Value: []float64{float64(s)}},
		)
	}

	return append(out, model.TreeNode{Left: model.Leaf, Right: model.Leaf, Value: []float64{float64(splits)}})
}

type treeShape struct {
	nodes int
	fits  bool
}

// prunedTree is a tree estimator whose size and fit are looked up by alpha.
// A tree that fits echoes the targets; any other predicts zeros.
type prunedTree struct {
	alpha  float64
	path   []float64
	shapes map[float64]treeShape
	y      []float64
	scored *[]float64
}

func (t *prunedTree) Fit(_ mat.Matrix, y []float64) error {
	t.y = append([]float64(nil), y...)

	return nil
}

func (t *prunedTree) Predict(mat.Matrix) ([]float64, error) {
	*t.scored = append(*t.scored, t.alpha)
	if t.shapes[t.alpha].fits {
		return t.y, nil
	}

	return make([]float64, len(t.y)), nil
}

func (t *prunedTree) Describe() (model.Model, error) {
	return &model.DecisionTree{Nodes: chain(t.shapes[t.alpha].nodes), Regression: true}, nil
}

func (t *prunedTree) PruningPath(mat.Matrix, []float64) ([]float64, error) {
	return t.path, nil
}

// grownNet is an MLP estimator that echoes the targets only for one
// architecture and predicts zeros for every other.
type grownNet struct {
	hidden  []int
	cols    int
	y       []float64
	fitCols int
	fitsAt  []int
}

func (n *grownNet) Fit(X mat.Matrix, y []float64) error {
	_, n.cols = X.Dims()
	n.y = append([]float64(nil), y...)

	return nil
}

func (n *grownNet) Predict(mat.Matrix) ([]float64, error) {
	if n.cols == n.fitCols && slices.Equal(n.hidden, n.fitsAt) {
		return n.y, nil
	}

	return make([]float64, len(n.y)), nil
}

func (n *grownNet) Describe() (model.Model, error) {
	sizes := append(append([]int{n.cols}, n.hidden...), 1)
	m := &model.MLP{Regression: true}
	for l := 0; l+1 < len(sizes); l++ {
		layer := make([][]float64, sizes[l])
		for i := range layer {
			layer[i] = make([]float64, sizes[l+1])
			for j := range layer[i] {
				layer[i][j] = float64(l + i - j)
			}
		}
		m.Weights = append(m.Weights, layer)
		m.Biases = append(m.Biases, make([]float64, sizes[l+1]))
	}

	return m, nil
}

type EngineSuite struct {
	suite.Suite
	ds     *dataset.Dataset
	engine *search.Engine
	logs   *bytes.Buffer
}

func (s *EngineSuite) SetupTest() {
	s.ds = linearTarget(200, 3)
	nsc := nescience.New()
	s.Require().NoError(nsc.Fit(s.ds))
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, nil))

	var err error
	s.engine, err = search.NewEngine(s.ds, nsc, search.WithLogger(logger))
	s.Require().NoError(err)
}

func fixed(name string, score float64) search.Family {
	return search.Family{Name: name, Run: func(*search.Engine) (search.State, error) {
		return search.State{Score: score, Estimator: linear.NewRegression()}, nil
	}}
}

func (s *EngineSuite) TestTieKeepsEarlierFamily() {
	best, err := s.engine.Run(fixed("first", 0.4), fixed("second", 0.4), fixed("worse", 0.7))
	s.Require().NoError(err)
	s.Equal("first", best.Family)
	s.Equal(0.4, best.Score)
}

func (s *EngineSuite) TestSkipIsLogged() {
	skip := search.Family{Name: "skipper", Run: func(*search.Engine) (search.State, error) {
		return search.State{}, search.ErrSkip
	}}
	best, err := s.engine.Run(skip, fixed("kept", 0.2))
	s.Require().NoError(err)
	s.Equal("kept", best.Family)
	s.Contains(s.logs.String(), "family=skipper skipped=true")
	s.Contains(s.logs.String(), "family=kept skipped=false score=0.2")
}

func (s *EngineSuite) TestErrorsPropagate() {
	boom := errors.New("boom")
	bad := search.Family{Name: "bad", Run: func(*search.Engine) (search.State, error) {
		return search.State{}, boom
	}}
	_, err := s.engine.Run(fixed("good", 0.1), bad)
	s.ErrorIs(err, boom)
}

func (s *EngineSuite) TestCeiling() {
	_, err := s.engine.Run(fixed("high", 1), fixed("higher", 2))
	s.ErrorIs(err, search.ErrNoModel)
}

func (s *EngineSuite) TestMissingFactoriesSkip() {
	for _, fam := range search.ClassifierFamilies(search.Factories{}) {
		_, err := fam.Run(s.engine)
		s.ErrorIs(err, search.ErrSkip, fam.Name)
	}
	for _, fam := range search.RegressorFamilies(search.Factories{}) {
		_, err := fam.Run(s.engine)
		s.ErrorIs(err, search.ErrSkip, fam.Name)
	}
}

func (s *EngineSuite) TestLinearRegressionSelectsRelevantFeature() {
	best, err := s.engine.Run(search.RegressorFamilies(search.DefaultFactories())...)
	s.Require().NoError(err)
	s.Equal("LinearRegression", best.Family)
	s.Require().NotNil(best.ViU)
	s.True(best.ViU[0])
	s.GreaterOrEqual(best.Score, 0.0)
	s.Less(best.Score, search.DefaultCeiling)
}

func (s *EngineSuite) TestPolySVCStartsFromDefaults() {
	var seen []model.SVCParams
	factory := func(p model.SVCParams) model.Estimator {
		seen = append(seen, p)

		return &echo{}
	}

	st, err := search.PolySVC(factory).Run(s.engine)
	s.Require().NoError(err)
	s.Require().NotEmpty(seen)

	cells := mat.DenseCopyOf(s.ds.X()).RawMatrix().Data
	gamma := 1 / (3 * stat.PopVariance(cells, nil))
	s.Equal(search.DefaultDegree, seen[0].Degree)
	s.Equal(search.DefaultC, seen[0].C)
	s.InDelta(gamma, seen[0].Gamma, 1e-12)
	s.Equal(search.DefaultCoef0, seen[0].Coef0)
	s.GreaterOrEqual(st.Score, 0.0)
}

func (s *EngineSuite) TestSingleFitFamilies() {
	var fitted []*echo
	f := func() model.Estimator {
		e := &echo{}
		fitted = append(fitted, e)

		return e
	}
	want, err := s.engine.Evaluate(&echo{}, nil)
	s.Require().NoError(err)

	for _, fam := range []search.Family{search.LinearSVC(f), search.LinearSVR(f)} {
		best, err := s.engine.Run(fam)
		s.Require().NoError(err, fam.Name)
		s.Equal(fam.Name, best.Family)
		s.Same(fitted[len(fitted)-1], best.Estimator, fam.Name)
		s.Equal(3, fitted[len(fitted)-1].p, fam.Name)
		s.Nil(best.ViU, fam.Name)
		s.InDelta(want.Score, best.Score, 1e-12, fam.Name)
	}
	s.Len(fitted, 2)
}

func (s *EngineSuite) TestDecisionTreeWalksPruningPath() {
	var (
		built  []float64
		scored []float64
	)
	path := []float64{0, 0.1, 0.2, 0.3}
	shapes := map[float64]treeShape{
		0.3: {nodes: 3},
		0.2: {nodes: 5, fits: true},
		0.1: {nodes: 5, fits: true},
		0:   {nodes: 7},
	}
	f := func(alpha float64) model.TreeEstimator {
		built = append(built, alpha)

		return &prunedTree{alpha: alpha, path: path, shapes: shapes, scored: &scored}
	}

	st, err := search.DecisionTree(f).Run(s.engine)
	s.Require().NoError(err)
	tree, ok := st.Estimator.(*prunedTree)
	s.Require().True(ok)
	s.Equal(0.2, tree.alpha)

	// The path is read from an unpruned tree, then walked from the most
	// pruned end; 0.1 repeats the size of 0.2 and is never scored.
	s.Equal([]float64{0, 0.3, 0.2, 0.1, 0}, built)
	s.Equal([]float64{0.3, 0.2, 0}, scored)
}

type netBuild struct {
	cols   int
	hidden []int
}

// netFactory records every network it hands out.
func netFactory(fitCols int, fitsAt []int, nets *[]*grownNet) model.MLPFactory {
	return func(hidden []int) model.Estimator {
		n := &grownNet{hidden: hidden, fitCols: fitCols, fitsAt: fitsAt}
		*nets = append(*nets, n)

		return n
	}
}

func builds(nets []*grownNet) []netBuild {
	out := make([]netBuild, len(nets))
	for i, n := range nets {
		out[i] = netBuild{cols: n.cols, hidden: n.hidden}
	}

	return out
}

func (s *EngineSuite) TestMLPKeepsStartWhenNoMoveImproves() {
	var nets []*grownNet
	h := search.DefaultHidden

	st, err := search.MLP(netFactory(2, []int{h}, &nets)).Run(s.engine)
	s.Require().NoError(err)

	ranking, err := s.engine.Ranking()
	s.Require().NoError(err)
	s.Require().NotNil(st.ViU)
	s.Equal(2, st.ViU.Count())
	s.True(st.ViU[ranking[0]])
	s.True(st.ViU[ranking[1]])
	s.True(st.ViU[0])
	s.Equal([]int{h}, st.Hidden)
	s.Same(nets[0], st.Estimator)

	// One candidate per move kind: next feature, deeper, wider.
	s.Equal([]netBuild{
		{2, []int{h}},
		{3, []int{h}},
		{2, []int{h, h}},
		{2, []int{h + 1}},
	}, builds(nets))
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNewEngine_Errors(t *testing.T) {
	ds := linearTarget(20, 1)
	_, err := search.NewEngine(nil, nescience.New())
	assert.ErrorIs(t, err, dataset.ErrNil)
	_, err = search.NewEngine(ds, nescience.New())
	assert.ErrorIs(t, err, nescience.ErrNotFitted)
}

func TestNaiveBayes_SkipsNegativeFeatures(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{-1, 0, 1, 2})
	ds, err := dataset.New(X, []float64{0, 0, 1, 1}, dataset.WithTargetKind(dataset.Categorical))
	require.NoError(t, err)
	nsc := nescience.New()
	require.NoError(t, nsc.Fit(ds))
	engine, err := search.NewEngine(ds, nsc)
	require.NoError(t, err)

	_, err = search.NaiveBayes(search.DefaultFactories().NaiveBayes).Run(engine)
	assert.ErrorIs(t, err, search.ErrSkip)
}

func TestTimeSeriesFamilies(t *testing.T) {
	ts := make([]float64, 144)
	for i := range ts {
		ts[i] = math.Sin(float64(i)/4) + 0.01*float64(i)
	}
	X, y, err := dataset.LagEmbed(ts, 0)
	require.NoError(t, err)
	ds, err := dataset.New(X, y)
	require.NoError(t, err)
	nsc := nescience.New()
	require.NoError(t, nsc.Fit(ds))
	engine, err := search.NewEngine(ds, nsc)
	require.NoError(t, err)

	for _, fam := range search.TimeSeriesFamilies() {
		st, err := fam.Run(engine)
		require.NoError(t, err, fam.Name)
		require.NotNil(t, st.ViU, fam.Name)
		assert.GreaterOrEqual(t, st.Score, 0.0, fam.Name)
		if fam.Name != "AutoRegressive" {
			// Window families always include the most recent lag.
			assert.True(t, st.ViU[len(st.ViU)-1], fam.Name)
		}
	}
}

func TestMLP_AcceptsWiderLayer(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	X := mat.NewDense(150, 2, nil)
	y := make([]float64, 150)
	for i := range y {
		X.Set(i, 0, rng.Float64())
		X.Set(i, 1, rng.Float64())
		y[i] = 2*X.At(i, 0) + 1
	}
	ds, err := dataset.New(X, y)
	require.NoError(t, err)
	nsc := nescience.New()
	require.NoError(t, nsc.Fit(ds))
	engine, err := search.NewEngine(ds, nsc)
	require.NoError(t, err)

	var nets []*grownNet
	h := search.DefaultHidden
	st, err := search.MLP(netFactory(2, []int{h + 1}, &nets)).Run(engine)
	require.NoError(t, err)

	assert.Equal(t, dataset.ViU{true, true}, st.ViU)
	assert.Equal(t, []int{h + 1}, st.Hidden)
	assert.Same(t, nets[2], st.Estimator)
	// Deeper ties with the start and is passed over; wider is accepted and
	// nothing grown from it improves.
	assert.Equal(t, []netBuild{
		{2, []int{h}},
		{2, []int{h, h}},
		{2, []int{h + 1}},
		{2, []int{h + 1, h}},
		{2, []int{h + 2}},
	}, builds(nets))
}
