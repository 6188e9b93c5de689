// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"
)

// ParamKind selects the moves tried for a parameter.
type ParamKind int

const (
	// Scale parameters try v·2 then v/2.
	Scale ParamKind = iota

	// Integer parameters try v+1, v−1, v+2, v−2.
	Integer
)

// Param is one coordinate of a hyperparameter search. Moves that leave
// [Min, Max] are not evaluated; use ±Inf for an open side.
type Param struct {
	Name      string
	Value     float64
	Min, Max  float64
	Kind      ParamKind
	Negatable bool // also try −v after the kind's own moves
}

// Eval fits and scores the candidate for one assignment of the parameters.
// values is owned by the callee.
type Eval func(values []float64) (State, error)

// CoordinateSearch improves one parameter at a time.
//
// Implementation:
//   - Stage 1: validate params and score the starting values.
//   - Stage 2: for each param in order, one Step over its moves; the first
//     improving move is kept and the search moves to the next param.
//   - Stage 3: repeat full passes until a pass accepts nothing.
//
// Returns the final values and the State they produced.
func CoordinateSearch(params []Param, eval Eval, opts ...Option) ([]float64, State, error) {
	cfg := resolve(opts)

	// Stage 1: validation and the starting point.
	values := make([]float64, len(params))
	for k, prm := range params {
		if err := validateParam(prm); err != nil {
			return nil, State{}, err
		}
		values[k] = prm.Value
	}
	best, err := eval(append([]float64(nil), values...))
	if err != nil {
		return nil, State{}, err
	}

	// Stages 2–3: passes of per-parameter steps.
	var (
		k, idx   int
		improved = true
		cands    []float64
		next     State
	)
	for improved {
		improved = false
		for k = range params {
			cands = neighbours(params[k], values[k])
			moves := make([]Move, len(cands))
			for c := range cands {
				trial := append([]float64(nil), values...)
				trial[k] = cands[c]
				moves[c] = func() (State, error) { return eval(trial) }
			}
			next, idx, err = step(best, moves, cfg)
			if err != nil {
				return nil, State{}, err
			}
			if idx >= 0 {
				best = next
				values[k] = cands[idx]
				improved = true
			}
		}
	}

	return values, best, nil
}

// neighbours lists the in-bounds moves of p from v, in trial order.
func neighbours(p Param, v float64) []float64 {
	var raw []float64
	switch p.Kind {
	case Integer:
		raw = []float64{v + 1, v - 1, v + 2, v - 2}
	default:
		raw = []float64{v * 2, v / 2}
	}
	if p.Negatable && v != 0 {
		raw = append(raw, -v)
	}

	out := raw[:0]
	for _, c := range raw {
		if c >= p.Min && c <= p.Max {
			out = append(out, c)
		}
	}

	return out
}

func validateParam(p Param) error {
	switch {
	case math.IsNaN(p.Value) || math.IsNaN(p.Min) || math.IsNaN(p.Max):
		return fmt.Errorf("%w: %s has NaN value or bound", ErrInvalidParam, p.Name)
	case p.Min > p.Max:
		return fmt.Errorf("%w: %s bounds [%g, %g]", ErrInvalidParam, p.Name, p.Min, p.Max)
	case p.Value < p.Min || p.Value > p.Max:
		return fmt.Errorf("%w: %s = %g outside [%g, %g]", ErrInvalidParam, p.Name, p.Value, p.Min, p.Max)
	case p.Kind == Integer && p.Value != math.Trunc(p.Value):
		return fmt.Errorf("%w: %s = %g is not integral", ErrInvalidParam, p.Name, p.Value)
	case p.Kind != Scale && p.Kind != Integer:
		return fmt.Errorf("%w: %s has kind %d", ErrInvalidParam, p.Name, int(p.Kind))
	}

	return nil
}
