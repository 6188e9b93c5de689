// SPDX-License-Identifier: MIT

package search

import (
	"sort"

	"github.com/katalvlaran/nescience/dataset"
)

// Build fits and scores a candidate restricted to viu; hidden is nil for
// estimators without hidden layers. Both slices are owned by the callee.
type Build func(viu dataset.ViU, hidden []int) (State, error)

// Ranking orders feature indices by decreasing relevance; equal values
// keep ascending index order.
func Ranking(relevance []float64) []int {
	idx := make([]int, len(relevance))
	for j := range idx {
		idx[j] = j
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return relevance[idx[a]] > relevance[idx[b]]
	})

	return idx
}

// GrowNetwork grows an MLP over p features, starting from the two highest
// ranked features and one hidden layer of DefaultHidden units.
//
// Moves, in priority order, from the current network:
//  1. add the next ranked feature (while any remain);
//  2. append a hidden layer of DefaultHidden units;
//  3. add one unit to layer i, for i ascending.
//
// Every candidate is built from scratch. The loop ends when no move
// improves the score.
func GrowNetwork(ranking []int, p int, build Build, opts ...Option) (State, error) {
	if len(ranking) == 0 {
		return State{}, ErrSkip
	}
	cfg := resolve(opts)

	viu := dataset.NewViU(p).With(ranking[0])
	if len(ranking) > 1 {
		viu = viu.With(ranking[1])
	}
	cur, err := build(viu, []int{DefaultHidden})
	if err != nil {
		return State{}, err
	}
	cur.ViU, cur.Hidden = viu, []int{DefaultHidden}

	var accepted int
	for {
		cur, accepted, err = step(cur, growMoves(cur, ranking, build), cfg)
		if err != nil {
			return State{}, err
		}
		if accepted < 0 {
			return cur, nil
		}
	}
}

func growMoves(cur State, ranking []int, build Build) []Move {
	moves := make([]Move, 0, len(cur.Hidden)+2)
	candidate := func(viu dataset.ViU, hidden []int) Move {
		return func() (State, error) {
			st, err := build(viu.Clone(), append([]int(nil), hidden...))
			if err != nil {
				return State{}, err
			}
			st.ViU, st.Hidden = viu, hidden

			return st, nil
		}
	}

	if next := cur.ViU.Count(); next < len(ranking) {
		moves = append(moves, candidate(cur.ViU.With(ranking[next]), cur.Hidden))
	}
	deeper := append(append([]int(nil), cur.Hidden...), DefaultHidden)
	moves = append(moves, candidate(cur.ViU, deeper))
	for i := range cur.Hidden {
		wider := append([]int(nil), cur.Hidden...)
		wider[i]++
		moves = append(moves, candidate(cur.ViU, wider))
	}

	return moves
}

// ForwardSelect starts from the highest ranked feature and adds the next
// ranked feature while the score strictly decreases.
func ForwardSelect(ranking []int, p int, build Build, opts ...Option) (State, error) {
	if len(ranking) == 0 {
		return State{}, ErrSkip
	}
	cfg := resolve(opts)

	viu := dataset.NewViU(p).With(ranking[0])
	cur, err := build(viu.Clone(), nil)
	if err != nil {
		return State{}, err
	}
	cur.ViU = viu

	var accepted int
	for cur.ViU.Count() < len(ranking) {
		more := cur.ViU.With(ranking[cur.ViU.Count()])
		move := func() (State, error) {
			st, err := build(more.Clone(), nil)
			if err != nil {
				return State{}, err
			}
			st.ViU = more

			return st, nil
		}
		cur, accepted, err = step(cur, []Move{move}, cfg)
		if err != nil {
			return State{}, err
		}
		if accepted < 0 {
			break
		}
	}

	return cur, nil
}
