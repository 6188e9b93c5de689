// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"math"
)

// Prune fits the tree for one cost-complexity alpha and reports its node
// count. score is only called for trees the walk does not skip.
type Prune func(alpha float64) (nodes int, score func() (State, error), err error)

// PruningWalk walks alphas (ascending, as returned by a pruning path) from
// the most to the least pruned tree. Trees with the same node count as the
// previous one are skipped; the walk stops at the first tree that does not
// improve on the best so far.
//
// Returns ErrSkip when alphas is empty or every alpha was skipped.
func PruningWalk(alphas []float64, fit Prune) (State, error) {
	var (
		best     = State{Score: math.Inf(1)}
		found    bool
		previous = -1
		i, nodes int
		cand     State
		score    func() (State, error)
		err      error
	)
	for i = len(alphas) - 1; i >= 0; i-- {
		nodes, score, err = fit(alphas[i])
		if errors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			return State{}, err
		}
		if nodes == previous {
			continue
		}
		previous = nodes

		if cand, err = score(); err != nil {
			return State{}, err
		}
		if cand.Score >= best.Score {
			break
		}
		best, found = cand, true
	}
	if !found {
		return State{}, ErrSkip
	}

	return best, nil
}
