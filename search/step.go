// SPDX-License-Identifier: MIT

package search

import (
	"errors"

	"github.com/sourcegraph/conc/pool"
)

// Step evaluates moves in priority order and returns the first candidate
// whose score is strictly smaller than cur.Score. When no move improves,
// cur is returned with accepted == false. A move failing with ErrSkip is
// ignored; any other error aborts the step.
func Step(cur State, moves []Move, opts ...Option) (State, bool, error) {
	next, idx, err := step(cur, moves, resolve(opts))
	if err != nil {
		return cur, false, err
	}

	return next, idx >= 0, nil
}

// step returns the accepted candidate and its index, or -1.
func step(cur State, moves []Move, cfg Options) (State, int, error) {
	if cfg.Parallelism <= 1 || len(moves) < 2 {
		var (
			i    int
			cand State
			err  error
		)
		for i = range moves {
			cand, err = moves[i]()
			if errors.Is(err, ErrSkip) {
				continue
			}
			if err != nil {
				return cur, -1, err
			}
			if cand.Score < cur.Score {
				return cand, i, nil
			}
		}

		return cur, -1, nil
	}

	// Stage 1: evaluate every move into its own slot.
	cands := make([]State, len(moves))
	errs := make([]error, len(moves))
	p := pool.New().WithMaxGoroutines(cfg.Parallelism)
	for i, mv := range moves {
		i, mv := i, mv
		p.Go(func() {
			cands[i], errs[i] = mv()
		})
	}
	p.Wait()

	// Stage 2: decide in priority order, exactly as the sequential loop would.
	var i int
	for i = range moves {
		if errors.Is(errs[i], ErrSkip) {
			continue
		}
		if errs[i] != nil {
			return cur, -1, errs[i]
		}
		if cands[i].Score < cur.Score {
			return cands[i], i, nil
		}
	}

	return cur, -1, nil
}
