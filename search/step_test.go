// SPDX-License-Identifier: MIT

package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/search"
)

func scored(s float64) search.Move {
	return func() (search.State, error) { return search.State{Score: s}, nil }
}

func TestStep_FirstImprovingWins(t *testing.T) {
	cur := search.State{Score: 0.5}
	moves := []search.Move{scored(0.6), scored(0.4), scored(0.3)}

	for _, k := range []int{1, 4} {
		next, ok, err := search.Step(cur, moves, search.WithParallelism(k))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0.4, next.Score, "parallelism %d", k)
	}
}

func TestStep_TieIsNotImprovement(t *testing.T) {
	cur := search.State{Score: 0.5}
	next, ok, err := search.Step(cur, []search.Move{scored(0.5), scored(0.7)})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, cur, next)
}

func TestStep_SkipAndError(t *testing.T) {
	skip := func() (search.State, error) { return search.State{}, search.ErrSkip }
	boom := errors.New("boom")
	fail := func() (search.State, error) { return search.State{}, boom }
	cur := search.State{Score: 1}

	next, ok, err := search.Step(cur, []search.Move{skip, scored(0.2)})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.2, next.Score)

	// An error behind the accepted move does not surface.
	_, ok, err = search.Step(cur, []search.Move{scored(0.2), fail}, search.WithParallelism(2))
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = search.Step(cur, []search.Move{fail, scored(0.2)}, search.WithParallelism(2))
	assert.ErrorIs(t, err, boom)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { search.WithParallelism(0) })
	assert.Panics(t, func() { search.WithCeiling(0) })
	assert.Panics(t, func() { search.WithLogger(nil) })
	assert.Panics(t, func() { search.ExpSmoothing(1) })
}

func TestCoordinateSearch_MonotoneReachesBound(t *testing.T) {
	params := []search.Param{
		{Name: "degree", Value: 5, Min: 1, Max: math.Inf(1), Kind: search.Integer},
		{Name: "C", Value: 1, Min: 1e-3, Max: 8, Kind: search.Scale},
		{Name: "gamma", Value: 0.5, Min: 1e-9, Max: math.Inf(1), Kind: search.Scale},
		{Name: "coef0", Value: 1, Min: math.Inf(-1), Max: math.Inf(1), Kind: search.Scale, Negatable: true},
	}
	eval := func(v []float64) (search.State, error) {
		return search.State{Score: 1 / (1 + v[1])}, nil
	}

	values, st, err := search.CoordinateSearch(params, eval)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 8, 0.5, 1}, values)
	assert.InDelta(t, 1.0/9, st.Score, 1e-12)
}

func TestCoordinateSearch_IntegerSteps(t *testing.T) {
	params := []search.Param{{Name: "degree", Value: 5, Min: 1, Max: 20, Kind: search.Integer}}
	eval := func(v []float64) (search.State, error) {
		return search.State{Score: math.Abs(v[0] - 9)}, nil
	}

	values, st, err := search.CoordinateSearch(params, eval, search.WithParallelism(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{9}, values)
	assert.Equal(t, 0.0, st.Score)
}

func TestCoordinateSearch_SignFlip(t *testing.T) {
	params := []search.Param{{Name: "coef0", Value: 1, Min: math.Inf(-1), Max: math.Inf(1), Kind: search.Scale, Negatable: true}}
	eval := func(v []float64) (search.State, error) {
		c := v[0]
		if c > 0 {
			return search.State{Score: 1 + math.Abs(c-1)}, nil
		}

		return search.State{Score: 0.5 + math.Abs(c+1)}, nil
	}

	values, st, err := search.CoordinateSearch(params, eval)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, values)
	assert.Equal(t, 0.5, st.Score)
}

func TestCoordinateSearch_InvalidParam(t *testing.T) {
	eval := func([]float64) (search.State, error) { return search.State{}, nil }
	bad := [][]search.Param{
		{{Name: "x", Value: 1, Min: 2, Max: 1}},
		{{Name: "x", Value: 5, Min: 0, Max: 1}},
		{{Name: "x", Value: 1.5, Min: 0, Max: 3, Kind: search.Integer}},
		{{Name: "x", Value: math.NaN(), Min: 0, Max: 1}},
	}
	for _, params := range bad {
		_, _, err := search.CoordinateSearch(params, eval)
		assert.ErrorIs(t, err, search.ErrInvalidParam)
	}
}

func TestPruningWalk(t *testing.T) {
	// Visited from the back: 0.4 (1 node), 0.3 (1 node, skipped), 0.2 (3
	// nodes, better), 0.1 (5 nodes, worse: stop). 0.0 would be best but is
	// never reached.
	alphas := []float64{0.0, 0.1, 0.2, 0.3, 0.4}
	nodes := map[float64]int{0.0: 9, 0.1: 5, 0.2: 3, 0.3: 1, 0.4: 1}
	score := map[float64]float64{0.0: 0.01, 0.1: 0.6, 0.2: 0.3, 0.3: 0.9, 0.4: 0.9}

	var scoredAlphas []float64
	fit := func(a float64) (int, func() (search.State, error), error) {
		return nodes[a], func() (search.State, error) {
			scoredAlphas = append(scoredAlphas, a)

			return search.State{Score: score[a]}, nil
		}, nil
	}

	best, err := search.PruningWalk(alphas, fit)
	require.NoError(t, err)
	assert.Equal(t, 0.3, best.Score)
	assert.Equal(t, []float64{0.4, 0.2, 0.1}, scoredAlphas)

	_, err = search.PruningWalk(nil, fit)
	assert.ErrorIs(t, err, search.ErrSkip)
}

func TestRanking(t *testing.T) {
	assert.Equal(t, []int{1, 3, 0, 2}, search.Ranking([]float64{0.2, 0.4, 0.1, 0.4}))
	assert.Empty(t, search.Ranking(nil))
}

func TestForwardSelect(t *testing.T) {
	// The score drops for two features and rises for the third.
	curve := map[int]float64{1: 0.5, 2: 0.3, 3: 0.4}
	build := func(viu dataset.ViU, hidden []int) (search.State, error) {
		assert.Nil(t, hidden)

		return search.State{Score: curve[viu.Count()]}, nil
	}

	st, err := search.ForwardSelect([]int{2, 0, 1}, 3, build)
	require.NoError(t, err)
	assert.Equal(t, dataset.ViU{true, false, true}, st.ViU)
	assert.Equal(t, 0.3, st.Score)

	_, err = search.ForwardSelect(nil, 3, build)
	assert.ErrorIs(t, err, search.ErrSkip)
}

func TestGrowNetwork(t *testing.T) {
	// Distance to 3 features and hidden layers [4 3]; a third layer costs 10.
	target := []int{4, 3}
	build := func(viu dataset.ViU, hidden []int) (search.State, error) {
		s := math.Abs(float64(3 - viu.Count()))
		for i, want := range target {
			got := 0
			if i < len(hidden) {
				got = hidden[i]
			}
			s += math.Abs(float64(got - want))
		}
		if len(hidden) > len(target) {
			s += 10
		}

		return search.State{Score: s}, nil
	}

	for _, k := range []int{1, 3} {
		st, err := search.GrowNetwork([]int{0, 1, 2}, 3, build, search.WithParallelism(k))
		require.NoError(t, err)
		assert.Equal(t, dataset.ViU{true, true, true}, st.ViU)
		assert.Equal(t, []int{4, 3}, st.Hidden)
		assert.Equal(t, 0.0, st.Score)
	}
}

func TestGrowNetwork_SingleFeature(t *testing.T) {
	calls := 0
	build := func(viu dataset.ViU, hidden []int) (search.State, error) {
		calls++
		assert.Equal(t, 1, viu.Count())

		return search.State{Score: 0.5}, nil
	}

	st, err := search.GrowNetwork([]int{0}, 1, build)
	require.NoError(t, err)
	assert.Equal(t, []int{search.DefaultHidden}, st.Hidden)
	// Seed network, then one layer move and one unit move.
	assert.Equal(t, 3, calls)
}
