// SPDX-License-Identifier: MIT

// Package inaccuracy measures how poorly a model's predictions encode the
// target:
//
//	inaccuracy = (L(ŷ, y) − min(L(y), L(ŷ))) / max(L(y), L(ŷ))
//
// where L is the optimal code length of package codelen and predictions
// are encoded with the kind of the target. Perfect predictions score 0.
package inaccuracy
