// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LagEmbed turns a univariate series into a supervised dataset: row i holds
// ts[i : i+size] and the target is ts[i+size]. size ≤ 0 selects ⌊√len(ts)⌋.
// The last column is therefore the most recent observation (lag 1).
func LagEmbed(ts []float64, size int) (*mat.Dense, []float64, error) {
	n := len(ts)
	if size <= 0 {
		size = int(math.Sqrt(float64(n)))
	}
	if size < 1 || n-size < 1 {
		return nil, nil, fmt.Errorf("%w: series of %d points with window %d", ErrEmpty, n, size)
	}

	rows := n - size
	X := mat.NewDense(rows, size, nil)
	y := make([]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < size; j++ {
			X.Set(i, j, ts[i+j])
		}
		y[i] = ts[i+size]
	}

	return X, y, nil
}
