// SPDX-License-Identifier: MIT

// Package bayes implements a multinomial naive Bayes classifier for
// non-negative count-like features with additive (Laplace/Lidstone)
// smoothing:
//
//	P(y=c)      = n_c / n
//	P(x_j | c)  = (N_cj + α) / (N_c + α·p)
//	ŷ           = argmax_c log P(y=c) + Σ_j x_j · log P(x_j | c)
package bayes
