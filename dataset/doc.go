// SPDX-License-Identifier: MIT

// Package dataset holds the immutable training data scored by the nescience
// components: an n×p feature matrix with per-column kind tags and a target
// vector with its own kind.
//
// What lives here:
//   - Dataset    — validated, read-only (X, y) pair backed by gonum *mat.Dense.
//   - Kind       — Numeric or Categorical tag for a feature or the target.
//   - ViU        — "variables in use" mask over features, copy-on-modify.
//   - EncodeLabels / LagEmbed — small constructors for string targets and
//     univariate time series.
//
// Contracts:
//   - n ≥ 1, p ≥ 1, len(y) == n, every value finite (NaN/±Inf rejected).
//   - Accessors return copies; a Dataset is never mutated after New.
//
// Errors (sentinel):
//   - ErrEmpty, ErrShape, ErrNonFinite, ErrKinds.
//
// Example:
//
//	X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
//	ds, err := dataset.New(X, []float64{0, 1, 0, 1},
//		dataset.WithTargetKind(dataset.Categorical))
package dataset
