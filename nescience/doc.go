// SPDX-License-Identifier: MIT

// Package nescience combines miscoding, inaccuracy and surfeit into one
// score: how much we still do not know about a target given a dataset and a
// trained model. Lower is better.
//
// Component policy:
//   - A zero component is replaced by Epsilon (DefaultEpsilon = 1e-6) so
//     that products and harmonic means stay informative.
//   - When surfeit < inaccuracy the model is still too small for its
//     description length to be meaningful and surfeit is forced to 1.
//
// Aggregation methods over components (m, i, s):
//
//	Euclid     √(m² + i² + s²)
//	Arithmetic (m + i + s) / 3
//	Geometric  ∛(m · i · s)
//	Product    m · i · s
//	Addition   m + i + s
//	Harmonic   3 / (1/m + 1/i + 1/s)   (default)
//
// Score accepts shortcuts for each component (WithSubset, WithPredictions,
// WithModelString); the estimator may be nil only when all three are given.
package nescience
