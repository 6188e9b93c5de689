// SPDX-License-Identifier: MIT

package dataset

// ViU ("variables in use") marks the features a candidate model consumes.
// Search branches never share a ViU: every modification goes through With
// or Clone.
type ViU []bool

// NewViU returns an all-false mask of length p.
func NewViU(p int) ViU { return make(ViU, p) }

// AllViU returns an all-true mask of length p.
func AllViU(p int) ViU {
	v := make(ViU, p)
	for j := range v {
		v[j] = true
	}

	return v
}

// Clone returns an independent copy (nil stays nil).
func (v ViU) Clone() ViU {
	if v == nil {
		return nil
	}

	return append(ViU(nil), v...)
}

// With returns a copy of v with feature j switched on.
func (v ViU) With(j int) ViU {
	out := v.Clone()
	if j >= 0 && j < len(out) {
		out[j] = true
	}

	return out
}

// Count returns the number of features in use.
func (v ViU) Count() int {
	c := 0
	for _, on := range v {
		if on {
			c++
		}
	}

	return c
}

// All reports whether every feature is in use.
func (v ViU) All() bool { return v.Count() == len(v) }

// Indices returns the ascending indices of features in use.
func (v ViU) Indices() []int {
	out := make([]int, 0, v.Count())
	for j, on := range v {
		if on {
			out = append(out, j)
		}
	}

	return out
}

// Float returns the mask as a 0/1 vector for dot products.
func (v ViU) Float() []float64 {
	out := make([]float64, len(v))
	for j, on := range v {
		if on {
			out[j] = 1
		}
	}

	return out
}
