// SPDX-License-Identifier: MIT

package dataset

import "sort"

// EncodeLabels maps string labels onto float codes 0..k-1 following the
// sorted order of the distinct labels. It returns the codes and the class
// table (classes[code] == label).
func EncodeLabels(labels []string) ([]float64, []string) {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	classes := make([]string, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, l := range classes {
		index[l] = i
	}
	codes := make([]float64, len(labels))
	for i, l := range labels {
		codes[i] = float64(index[l])
	}

	return codes, classes
}

// UniqueInverse returns the sorted distinct values of y and, for every
// sample, the index of its value in that table.
func UniqueInverse(y []float64) (classes []float64, inverse []int) {
	seen := make(map[float64]struct{}, len(y))
	for _, v := range y {
		seen[v] = struct{}{}
	}
	classes = make([]float64, 0, len(seen))
	for v := range seen {
		classes = append(classes, v)
	}
	sort.Float64s(classes)

	index := make(map[float64]int, len(classes))
	for i, v := range classes {
		index[v] = i
	}
	inverse = make([]int, len(y))
	for i, v := range y {
		inverse[i] = index[v]
	}

	return classes, inverse
}
