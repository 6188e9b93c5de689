// SPDX-License-Identifier: MIT

// Package discretize maps real-valued vectors onto a small integer alphabet
// so that empirical code lengths can be computed over them.
//
// 🚀 What it does
//
//	Discretize fits uniform-width bins over [min, max] and grows the total
//	bin count until the number of *populated* bins reaches a data-driven
//	target (⌊∛n⌋ by default, never below 2), or stops changing. Skewed
//	inputs therefore still end up with a useful number of occupied symbols
//	instead of a handful of crowded bins and many empty ones.
//
//	Relabel is the categorical counterpart: distinct values become
//	0..k-1 in sorted order.
//
// ⚙️ Usage:
//
//	codes, err := discretize.Discretize(x)                       // ∛n rule
//	codes, err = discretize.Discretize(x,
//		discretize.WithRule(discretize.SqrtByDimension),
//		discretize.WithDimension(2))                              // n^¼ rule
//
// Determinism: results depend only on the input values; no random state.
//
// Complexity: O(n·log b) per binning pass, b = total bins; the number of
// passes is small in practice (it stops as soon as the populated count
// stabilises).
package discretize
