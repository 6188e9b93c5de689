// SPDX-License-Identifier: MIT

// Package codelen estimates the optimal (Shannon) code length of one
// variable, or of the joint distribution of two variables, from empirical
// symbol frequencies.
//
// Numeric variables are discretized first (see package discretize),
// categorical variables are relabeled to 0..k-1. Two variables are combined
// into one alphabet with the Cantor pairing function, which is injective on
// the non-negative integers, so the joint symbol carries both codes.
//
//	L(x)   = Σ_s c_s · (−log₂(c_s / n))
//	L(x,y) = same formula over the paired symbols
//
// L is ≥ 0 and equals 0 exactly when the (joint) symbol is constant.
package codelen
