// SPDX-License-Identifier: MIT

package discretize

import "sort"

// Relabel maps categorical values onto 0..k-1 following their sorted order
// and returns the codes together with k. The labelling is stable: equal
// inputs always receive equal codes and the code order never depends on
// the order of first appearance.
func Relabel(x []float64) ([]int, int) {
	distinct := make([]float64, 0, len(x))
	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	sort.Float64s(distinct)

	index := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		index[v] = i
	}
	codes := make([]int, len(x))
	for i, v := range x {
		codes[i] = index[v]
	}

	return codes, len(distinct)
}
