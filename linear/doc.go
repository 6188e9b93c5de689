// SPDX-License-Identifier: MIT

// Package linear implements ordinary least-squares linear regression
//
//	ŷ = Coef·x + Intercept
//
// fitted through a thin SVD of the intercept-augmented design matrix, so
// rank-deficient designs (duplicate or constant columns) still produce the
// minimum-norm solution instead of failing.
//
// NewFixed builds a regression with caller-chosen coefficients; Fit then
// only checks shapes. Moving-average and exponential-smoothing forecasters
// are linear models of this kind.
package linear
