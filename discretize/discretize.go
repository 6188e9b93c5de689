// SPDX-License-Identifier: MIT

package discretize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Discretize maps x onto bin indices 0..b-1 of a uniform-width binning.
//
// Algorithm:
//  1. target = rule(n) (minimum MinBins); total = target; previous = 0.
//  2. Bin x uniformly with total bins; populated = #bins holding data.
//  3. If populated == previous → stop (nothing changed).
//  4. If populated < target → previous = populated,
//     total += round(n·(1 − populated/target)/target), go to 2.
//  5. Otherwise stop.
//
// The codes of the last binning are returned. A constant vector maps to 0.
//
// Errors: ErrEmptyInput, ErrNonFinite.
func Discretize(x []float64, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	lo, hi := floats.Min(x), floats.Max(x)
	if lo == hi {
		return make([]int, n), nil
	}

	target := targetBins(n, cfg)
	total := target
	previous := 0
	codes := make([]int, n)
	for {
		populated := binUniform(x, lo, hi, total, codes)
		if populated == previous {
			break
		}
		if populated >= target {
			break
		}
		previous = populated
		total += int(math.Round(float64(n) * (1 - float64(populated)/float64(target)) / float64(target)))
	}

	return codes, nil
}

// targetBins applies the configured rule to n.
func targetBins(n int, cfg Options) int {
	var b int
	switch {
	case cfg.Rule == SqrtByDimension && cfg.Dimension >= 2:
		b = int(math.Sqrt(math.Sqrt(float64(n))))
	case cfg.Rule == SqrtByDimension:
		b = int(math.Sqrt(float64(n)))
	default:
		// Cbrt may land one ulp below an exact integer root.
		b = int(math.Cbrt(float64(n)) + 1e-9)
	}
	if b < MinBins {
		b = MinBins
	}

	return b
}

// binUniform writes into codes the index of the bin holding each value
// and returns how many of the bins are populated.
//
// Edges are lo + k·(hi−lo)/bins, k = 0..bins. A value lying exactly on an
// interior edge belongs to the upper bin; hi belongs to the last bin.
func binUniform(x []float64, lo, hi float64, bins int, codes []int) int {
	step := (hi - lo) / float64(bins)
	interior := make([]float64, bins-1)
	for k := range interior {
		interior[k] = lo + float64(k+1)*step
	}

	seen := make([]bool, bins)
	populated := 0
	for i, v := range x {
		b := sort.Search(len(interior), func(k int) bool { return interior[k] > v })
		codes[i] = b
		if !seen[b] {
			seen[b] = true
			populated++
		}
	}

	return populated
}
