// SPDX-License-Identifier: MIT

package miscoding

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nescience/codelen"
	"github.com/katalvlaran/nescience/dataset"
	"github.com/katalvlaran/nescience/model"
)

// Miscoding scores features, feature subsets and models against a target.
// Fit once; every query afterwards is read-only.
type Miscoding struct {
	opts    Options
	ds      *dataset.Dataset
	profile Profile
	lenY    float64
	lenX    []float64 // L(x_j) per feature, reused by FeaturesMatrix
}

// New returns an unfitted Miscoding.
func New(opts ...Option) *Miscoding {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Miscoding{opts: cfg}
}

// Fit computes the per-feature profile of ds.
//
// Complexity: O(p·n·log n) for p features and n samples.
func (m *Miscoding) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: nil dataset", ErrInvalidArgument)
	}

	y := codelen.Of(ds.Y(), ds.TargetKind())
	ly, err := codelen.OptimalCodeLength(y, nil, m.codeOpts()...)
	if err != nil {
		return fmt.Errorf("miscoding: target: %w", err)
	}

	p := ds.Features()
	regular := make([]float64, p)
	lenX := make([]float64, p)
	var j int
	for j = 0; j < p; j++ {
		col, _ := ds.Column(j)
		x := codelen.Of(col, ds.Kind(j))
		lx, lxy, err := m.pairLengths(x, y)
		if err != nil {
			return fmt.Errorf("miscoding: feature %d: %w", j, err)
		}
		lenX[j] = lx
		regular[j] = Value(lx, ly, lxy)
	}

	m.ds = ds
	m.lenY = ly
	m.lenX = lenX
	m.profile = NewProfile(regular)

	return nil
}

// Features returns a copy of the per-feature vector in the given mode.
func (m *Miscoding) Features(mode Mode) ([]float64, error) {
	if m.ds == nil {
		return nil, ErrNotFitted
	}

	return m.profile.view(mode)
}

// Profile returns a deep copy of all three views.
func (m *Miscoding) Profile() (Profile, error) {
	if m.ds == nil {
		return Profile{}, ErrNotFitted
	}
	r, _ := m.profile.view(Regular)
	a, _ := m.profile.view(Adjusted)
	p, _ := m.profile.view(Partial)

	return Profile{Regular: r, Adjusted: a, Partial: p}, nil
}

// Subset returns the miscoding of the features selected by viu.
// The result is floored at 0.
func (m *Miscoding) Subset(viu dataset.ViU) (float64, error) {
	if m.ds == nil {
		return 0, ErrNotFitted
	}
	partial := m.profile.Partial
	if len(viu) != len(partial) {
		return 0, fmt.Errorf("%w: mask length %d for %d features", ErrInvalidArgument, len(viu), len(partial))
	}

	top := 1.0
	for _, v := range partial {
		if v < 0 {
			top += v
		}
	}
	score := top - floats.Dot(viu.Float(), partial)
	if score < 0 {
		score = 0
	}

	return score, nil
}

// Model returns the subset miscoding of the attributes m reads.
func (m *Miscoding) Model(mdl model.Model) (float64, error) {
	if m.ds == nil {
		return 0, ErrNotFitted
	}
	viu, err := model.AttributesInUse(mdl, m.ds.Features())
	if err != nil {
		return 0, err
	}

	return m.Subset(viu)
}

// Cross returns the miscoding between feature and the target shifted by
// each lag ℓ ∈ [minLag, maxLag): x[0:n−ℓ] is compared with y[ℓ:n].
// maxLag < 0 selects the default ⌊√n⌋.
//
// The mode views are computed over the lag vector, not over features.
func (m *Miscoding) Cross(feature, minLag, maxLag int, mode Mode) ([]float64, error) {
	if m.ds == nil {
		return nil, ErrNotFitted
	}
	if mode != Regular && mode != Adjusted && mode != Partial {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	n := m.ds.Samples()
	if feature < 0 || feature >= m.ds.Features() {
		return nil, fmt.Errorf("%w: feature %d of %d", ErrInvalidArgument, feature, m.ds.Features())
	}
	if maxLag < 0 {
		maxLag = int(math.Sqrt(float64(n)))
	}
	if minLag < 0 || maxLag > n-1 || minLag >= maxLag {
		return nil, fmt.Errorf("%w: lags [%d, %d) with %d samples", ErrInvalidArgument, minLag, maxLag, n)
	}

	col, _ := m.ds.Column(feature)
	target := m.ds.Y()
	regular := make([]float64, 0, maxLag-minLag)
	var lag int
	for lag = minLag; lag < maxLag; lag++ {
		x := codelen.Of(col[:n-lag], m.ds.Kind(feature))
		y := codelen.Of(target[lag:], m.ds.TargetKind())
		ly, err := codelen.OptimalCodeLength(y, nil, m.codeOpts()...)
		if err != nil {
			return nil, fmt.Errorf("miscoding: lag %d: %w", lag, err)
		}
		lx, lxy, err := m.pairLengths(x, y)
		if err != nil {
			return nil, fmt.Errorf("miscoding: lag %d: %w", lag, err)
		}
		regular = append(regular, Value(lx, ly, lxy))
	}

	return NewProfile(regular).view(mode)
}

// FeaturesMatrix returns the p×p matrix of pairwise feature miscoding.
//
//   - Regular: symmetric, zero diagonal.
//   - Adjusted: each row holds 1 − regular (diagonal 1) normalised to sum 1.
//   - Partial is not defined for pairs and yields ErrInvalidMode.
//
// Complexity: O(p²·n·log n).
func (m *Miscoding) FeaturesMatrix(mode Mode) (*mat.Dense, error) {
	if m.ds == nil {
		return nil, ErrNotFitted
	}
	if mode != Regular && mode != Adjusted {
		return nil, fmt.Errorf("%w: %v is not defined for feature pairs", ErrInvalidMode, mode)
	}

	p := m.ds.Features()
	out := mat.NewDense(p, p, nil)
	var i, j int
	for i = 0; i < p-1; i++ {
		ci, _ := m.ds.Column(i)
		xi := codelen.Of(ci, m.ds.Kind(i))
		for j = i + 1; j < p; j++ {
			cj, _ := m.ds.Column(j)
			xj := codelen.Of(cj, m.ds.Kind(j))
			lij, err := codelen.OptimalCodeLength(xi, &xj, m.codeOpts()...)
			if err != nil {
				return nil, fmt.Errorf("miscoding: pair (%d,%d): %w", i, j, err)
			}
			v := Value(m.lenX[i], m.lenX[j], lij)
			out.Set(i, j, v)
			out.Set(j, i, v)
		}
	}
	if mode == Regular {
		return out, nil
	}

	row := make([]float64, p)
	for i = 0; i < p; i++ {
		for j = 0; j < p; j++ {
			row[j] = 1 - out.At(i, j)
		}
		if s := floats.Sum(row); s != 0 {
			floats.Scale(1/s, row)
		}
		out.SetRow(i, row)
	}

	return out, nil
}

func (m *Miscoding) codeOpts() []codelen.Option {
	return []codelen.Option{codelen.WithRule(m.opts.Rule)}
}

func (m *Miscoding) pairLengths(x, y codelen.Variable) (lx, lxy float64, err error) {
	if lx, err = codelen.OptimalCodeLength(x, nil, m.codeOpts()...); err != nil {
		return 0, 0, err
	}
	if lxy, err = codelen.OptimalCodeLength(x, &y, m.codeOpts()...); err != nil {
		return 0, 0, err
	}

	return lx, lxy, nil
}
