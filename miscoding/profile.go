// SPDX-License-Identifier: MIT

package miscoding

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Value is the normalised miscoding of two variables given their own code
// lengths la, lb and their joint code length lab. Two constant variables
// (max length 0) share no usable information and score 1.
func Value(la, lb, lab float64) float64 {
	hi := math.Max(la, lb)
	if hi == 0 {
		return 1
	}

	return (lab - math.Min(la, lb)) / hi
}

// NewProfile derives the adjusted and partial views from a regular vector.
//
//	adjusted = (1 − regular) / Σ(1 − regular)   (unnormalised when the sum is 0)
//	partial  = adjusted − regular / Σregular     (adjusted when the sum is 0)
//
// The input slice is copied.
func NewProfile(regular []float64) Profile {
	reg := append([]float64(nil), regular...)

	adjusted := make([]float64, len(reg))
	for j, v := range reg {
		adjusted[j] = 1 - v
	}
	if s := floats.Sum(adjusted); s != 0 {
		floats.Scale(1/s, adjusted)
	}

	partial := append([]float64(nil), adjusted...)
	if s := floats.Sum(reg); s != 0 {
		for j, v := range reg {
			partial[j] -= v / s
		}
	}

	return Profile{Regular: reg, Adjusted: adjusted, Partial: partial}
}
