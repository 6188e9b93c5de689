// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the dataset package.
var (
	// ErrEmpty indicates a dataset without samples or without features.
	ErrEmpty = errors.New("dataset: no samples or no features")

	// ErrShape indicates that len(y) does not match the number of rows of X,
	// or that a column index / mask length does not match the feature count.
	ErrShape = errors.New("dataset: shape mismatch")

	// ErrNonFinite indicates a NaN or ±Inf value in X or y.
	ErrNonFinite = errors.New("dataset: NaN or Inf encountered")

	// ErrKinds indicates a kind vector whose length differs from the feature count.
	ErrKinds = errors.New("dataset: feature kinds do not match feature count")

	// ErrInvalidKind indicates an unknown kind string.
	ErrInvalidKind = errors.New("dataset: invalid kind")

	// ErrNil is returned by consumers handed a nil *Dataset.
	ErrNil = errors.New("dataset: nil dataset")
)

// Kind tags a feature or the target as numeric (discretized before coding)
// or categorical (relabeled before coding).
type Kind int

const (
	// Numeric values are discretized into uniform-width bins.
	Numeric Kind = iota

	// Categorical values are relabeled to 0..k-1.
	Categorical
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "numeric" / "categorical" onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "numeric":
		return Numeric, nil
	case "categorical":
		return Categorical, nil
	}

	return 0, fmt.Errorf("%w: %q (valid: numeric, categorical)", ErrInvalidKind, s)
}

// Options configures New.
type Options struct {
	FeatureKinds []Kind // nil ⇒ every feature Numeric
	TargetKind   Kind   // default Numeric
}

// Option mutates Options.
type Option func(*Options)

// WithFeatureKinds tags every feature column; len(kinds) must equal p.
func WithFeatureKinds(kinds ...Kind) Option {
	return func(o *Options) {
		o.FeatureKinds = append([]Kind(nil), kinds...)
	}
}

// WithTargetKind tags the target vector.
func WithTargetKind(k Kind) Option {
	return func(o *Options) { o.TargetKind = k }
}

// Dataset is an immutable (X, y) pair.
type Dataset struct {
	x      *mat.Dense
	y      []float64
	kinds  []Kind
	target Kind
}

// New validates X and y and returns a Dataset holding private copies of both.
//
// Implementation:
//   - Stage 1: shape checks (n ≥ 1, p ≥ 1, len(y) == n).
//   - Stage 2: finiteness of every cell and every target value.
//   - Stage 3: resolve kinds and copy storage.
//
// Complexity: O(n·p).
func New(X mat.Matrix, y []float64, opts ...Option) (*Dataset, error) {
	cfg := Options{TargetKind: Numeric}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: shape.
	if X == nil {
		return nil, ErrEmpty
	}
	n, p := X.Dims()
	if n == 0 || p == 0 {
		return nil, ErrEmpty
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: len(y)=%d, rows(X)=%d", ErrShape, len(y), n)
	}

	// Stage 2: numeric policy.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			if !isFinite(X.At(i, j)) {
				return nil, fmt.Errorf("%w: X[%d,%d]", ErrNonFinite, i, j)
			}
		}
		if !isFinite(y[i]) {
			return nil, fmt.Errorf("%w: y[%d]", ErrNonFinite, i)
		}
	}

	// Stage 3: kinds + copies.
	kinds := cfg.FeatureKinds
	if kinds == nil {
		kinds = make([]Kind, p)
	} else if len(kinds) != p {
		return nil, fmt.Errorf("%w: %d kinds for %d features", ErrKinds, len(kinds), p)
	}

	return &Dataset{
		x:      mat.DenseCopyOf(X),
		y:      append([]float64(nil), y...),
		kinds:  kinds,
		target: cfg.TargetKind,
	}, nil
}

// Samples returns n.
func (d *Dataset) Samples() int {
	r, _ := d.x.Dims()

	return r
}

// Features returns p.
func (d *Dataset) Features() int {
	_, c := d.x.Dims()

	return c
}

// X returns a read-only view of the feature matrix. Callers must not mutate it.
func (d *Dataset) X() mat.Matrix { return d.x }

// Y returns a copy of the target vector.
func (d *Dataset) Y() []float64 { return append([]float64(nil), d.y...) }

// Column returns a copy of feature column j.
func (d *Dataset) Column(j int) ([]float64, error) {
	if j < 0 || j >= d.Features() {
		return nil, fmt.Errorf("%w: column %d of %d", ErrShape, j, d.Features())
	}

	return mat.Col(nil, j, d.x), nil
}

// Kind returns the kind of feature j (Numeric when j is out of range).
func (d *Dataset) Kind(j int) Kind {
	if j < 0 || j >= len(d.kinds) {
		return Numeric
	}

	return d.kinds[j]
}

// TargetKind returns the kind of the target vector.
func (d *Dataset) TargetKind() Kind { return d.target }

// NonNegative reports whether every feature value is ≥ 0. Count-based
// models (multinomial naive Bayes) require it.
func (d *Dataset) NonNegative() bool {
	n, p := d.x.Dims()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			if d.x.At(i, j) < 0 {
				return false
			}
		}
	}

	return true
}

// Select returns a copy of X restricted to the columns marked in viu, in
// ascending column order. A nil viu selects every column.
func (d *Dataset) Select(viu ViU) (*mat.Dense, error) {
	if viu == nil {
		return mat.DenseCopyOf(d.x), nil
	}

	return SelectColumns(d.x, viu)
}

// SelectColumns returns a copy of X restricted to the columns marked in viu.
func SelectColumns(X mat.Matrix, viu ViU) (*mat.Dense, error) {
	n, p := X.Dims()
	if len(viu) != p {
		return nil, fmt.Errorf("%w: mask length %d for %d features", ErrShape, len(viu), p)
	}
	idx := viu.Indices()
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: mask selects no feature", ErrEmpty)
	}

	out := mat.NewDense(n, len(idx), nil)
	var i, k int
	for i = 0; i < n; i++ {
		for k = range idx {
			out.Set(i, k, X.At(i, idx[k]))
		}
	}

	return out, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
