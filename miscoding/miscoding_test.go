// SPDX-License-Identifier: MIT

package miscoding_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/miscoding"
	"github.com/katalvlaran/nescience/model"
)

// linearAmongNoise builds n samples of six features where the target is twice
// feature 0 and features 1..5 are independent noise.
func linearAmongNoise(n int, seed int64) *dataset.Dataset {
	rng := rand.New(rand.NewSource(seed))
	X := mat.NewDense(n, 6, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < 6; j++ {
			X.Set(i, j, rng.Float64())
		}
		y[i] = 2 * X.At(i, 0)
	}
	ds, err := dataset.New(X, y)
	if err != nil {
		panic(err)
	}

	return ds
}

type MiscodingSuite struct {
	suite.Suite
	ds *dataset.Dataset
	m  *miscoding.Miscoding
}

func (s *MiscodingSuite) SetupTest() {
	s.ds = linearAmongNoise(500, 7)
	s.m = miscoding.New()
	s.Require().NoError(s.m.Fit(s.ds))
}

// TestRelevantFeatureWins: the generating feature has the smallest regular
// miscoding and the largest adjusted share.
func (s *MiscodingSuite) TestRelevantFeatureWins() {
	regular, err := s.m.Features(miscoding.Regular)
	s.Require().NoError(err)
	s.Equal(0, floats.MinIdx(regular))
	s.InDelta(0.0, regular[0], 1e-12, "target is fully determined by its feature")
	for j := 1; j < len(regular); j++ {
		s.Greater(regular[j], 0.5, "noise feature %d", j)
	}

	adjusted, err := s.m.Features(miscoding.Adjusted)
	s.Require().NoError(err)
	s.Equal(0, floats.MaxIdx(adjusted))
	s.InDelta(1.0, floats.Sum(adjusted), 1e-9)
}

// TestSubsetOrdering: the relevant feature alone beats any noise feature,
// and adding noise to it never helps.
func (s *MiscodingSuite) TestSubsetOrdering() {
	best, err := s.m.Subset(dataset.NewViU(6).With(0))
	s.Require().NoError(err)
	noise, err := s.m.Subset(dataset.NewViU(6).With(3))
	s.Require().NoError(err)
	both, err := s.m.Subset(dataset.NewViU(6).With(0).With(3))
	s.Require().NoError(err)

	s.Less(best, noise)
	s.GreaterOrEqual(both, best)
}

// TestSubsetNonNegative samples random masks.
func (s *MiscodingSuite) TestSubsetNonNegative() {
	rng := rand.New(rand.NewSource(3))
	for k := 0; k < 64; k++ {
		viu := dataset.NewViU(6)
		for j := range viu {
			viu[j] = rng.Intn(2) == 1
		}
		v, err := s.m.Subset(viu)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 0.0)
	}

	_, err := s.m.Subset(dataset.NewViU(5))
	s.ErrorIs(err, miscoding.ErrInvalidArgument)
}

// TestModel uses the split features of a tree as its subset.
func (s *MiscodingSuite) TestModel() {
	tree := &model.DecisionTree{Nodes: []model.TreeNode{
		{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Left: model.Leaf, Right: model.Leaf, Value: []float64{1}},
		{Left: model.Leaf, Right: model.Leaf, Value: []float64{3}},
	}, Regression: true}

	got, err := s.m.Model(tree)
	s.Require().NoError(err)
	want, err := s.m.Subset(dataset.NewViU(6).With(0))
	s.Require().NoError(err)
	s.Equal(want, got)

	all, err := s.m.Model(&model.LinearRegression{Coef: make([]float64, 6)})
	s.Require().NoError(err)
	want, err = s.m.Subset(dataset.AllViU(6))
	s.Require().NoError(err)
	s.Equal(want, all)

	_, err = s.m.Model(nil)
	s.ErrorIs(err, model.ErrUnsupported)
}

// TestFeaturesMatrix checks symmetry, the zero diagonal and row
// normalisation of the adjusted view.
func (s *MiscodingSuite) TestFeaturesMatrix() {
	reg, err := s.m.FeaturesMatrix(miscoding.Regular)
	s.Require().NoError(err)
	r, c := reg.Dims()
	s.Equal(6, r)
	s.Equal(6, c)
	for i := 0; i < 6; i++ {
		s.Equal(0.0, reg.At(i, i))
		for j := 0; j < 6; j++ {
			s.Equal(reg.At(i, j), reg.At(j, i))
		}
	}

	adj, err := s.m.FeaturesMatrix(miscoding.Adjusted)
	s.Require().NoError(err)
	for i := 0; i < 6; i++ {
		s.InDelta(1.0, floats.Sum(mat.Row(nil, i, adj)), 1e-9)
	}

	_, err = s.m.FeaturesMatrix(miscoding.Partial)
	s.ErrorIs(err, miscoding.ErrInvalidMode)
}

func TestMiscodingSuite(t *testing.T) {
	suite.Run(t, new(MiscodingSuite))
}

func TestNotFitted(t *testing.T) {
	m := miscoding.New()

	_, err := m.Features(miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	_, err = m.Subset(dataset.NewViU(1))
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	_, err = m.Model(&model.LinearSVR{})
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	_, err = m.Cross(0, 0, 1, miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	_, err = m.FeaturesMatrix(miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	_, err = m.Profile()
	assert.ErrorIs(t, err, miscoding.ErrNotFitted)
	assert.ErrorIs(t, m.Fit(nil), miscoding.ErrInvalidArgument)
}

func TestParseMode(t *testing.T) {
	mode, err := miscoding.ParseMode("partial")
	require.NoError(t, err)
	assert.Equal(t, miscoding.Partial, mode)
	assert.Equal(t, "adjusted", miscoding.Adjusted.String())

	_, err = miscoding.ParseMode("joint")
	assert.ErrorIs(t, err, miscoding.ErrInvalidMode)
}

func TestValue(t *testing.T) {
	assert.Equal(t, 1.0, miscoding.Value(0, 0, 0), "two constants carry no information")
	assert.Equal(t, 0.0, miscoding.Value(4, 4, 4), "identical variables")
	assert.InDelta(t, 1.0, miscoding.Value(3, 3, 6), 1e-12, "independent variables")
}

func TestNewProfile(t *testing.T) {
	p := miscoding.NewProfile([]float64{0.2, 0.6, 1})
	assert.InDeltaSlice(t, []float64{0.8 / 1.2, 0.4 / 1.2, 0}, p.Adjusted, 1e-12)
	assert.InDelta(t, 1.0, floats.Sum(p.Adjusted), 1e-12)
	assert.InDeltaSlice(t, []float64{
		0.8/1.2 - 0.2/1.8,
		0.4/1.2 - 0.6/1.8,
		0 - 1/1.8,
	}, p.Partial, 1e-12)

	// All regular values equal to 1: adjusted stays all zero.
	p = miscoding.NewProfile([]float64{1, 1})
	assert.Equal(t, []float64{0, 0}, p.Adjusted)
	assert.InDeltaSlice(t, []float64{-0.5, -0.5}, p.Partial, 1e-12)

	// All regular values zero: partial equals adjusted.
	p = miscoding.NewProfile([]float64{0, 0, 0, 0})
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, p.Partial, 1e-12)
}

func TestCross(t *testing.T) {
	const n = 100
	rng := rand.New(rand.NewSource(11))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	// y[t] = x[t-2]: the target repeats the feature two steps later.
	y := make([]float64, n)
	y[0], y[1] = 0.5, 0.5
	copy(y[2:], x[:n-2])

	ds, err := dataset.New(mat.NewDense(n, 1, x), y)
	require.NoError(t, err)
	m := miscoding.New()
	require.NoError(t, m.Fit(ds))

	regular, err := m.Cross(0, 0, 4, miscoding.Regular)
	require.NoError(t, err)
	require.Len(t, regular, 4)
	assert.Equal(t, 2, floats.MinIdx(regular))
	assert.InDelta(t, 0.0, regular[2], 1e-12)

	def, err := m.Cross(0, 0, -1, miscoding.Adjusted)
	require.NoError(t, err)
	assert.Len(t, def, 10, "default max lag is ⌊√n⌋")

	_, err = m.Cross(1, 0, 4, miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrInvalidArgument)
	_, err = m.Cross(0, -1, 4, miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrInvalidArgument)
	_, err = m.Cross(0, 0, n, miscoding.Regular)
	assert.ErrorIs(t, err, miscoding.ErrInvalidArgument)
	_, err = m.Cross(0, 0, 4, miscoding.Mode(7))
	assert.ErrorIs(t, err, miscoding.ErrInvalidMode)
}
