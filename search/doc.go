// SPDX-License-Identifier: MIT

// Package search runs a greedy, nescience-driven search over model
// families, hyperparameters, network architectures and feature subsets.
//
// Every loop in the package is built from one primitive:
//
//	Step(current, moves) → (next, accepted, err)
//
// Moves are candidate constructors tried in priority order; the first one
// whose score is strictly smaller than the current score replaces the
// current State as a whole. With WithParallelism(k > 1) the candidates of
// one step are evaluated concurrently through a bounded conc pool, but the
// accept decision is still taken in priority order, so the result is the
// same as the sequential run.
//
// Strategies built on Step:
//
//	CoordinateSearch — per-parameter ×2/÷2 (Scale) or ±1/±2 (Integer) moves,
//	                   optional sign flip, bounded by [Min, Max].
//	PruningWalk      — cost-complexity alphas from most to least pruned,
//	                   stopping at the first non-improving tree.
//	GrowNetwork      — feature, layer and unit additions to an MLP.
//	ForwardSelect    — most relevant features first while the score drops.
//
// Families wrap one strategy around injected estimator factories. Engine.Run
// evaluates families in order and keeps the best State; ties keep the
// earlier family and the initial ceiling is DefaultCeiling.
//
// Errors:
//   - ErrSkip         — the family does not apply (logged, never surfaced).
//   - ErrNoModel      — no family scored below the ceiling.
//   - ErrInvalidParam — malformed coordinate-search parameter.
//
// Complexity: every candidate costs one Fit, one Predict and one nescience
// evaluation; the loops are bounded by the number of accepted moves.
package search
