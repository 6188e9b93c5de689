// SPDX-License-Identifier: MIT

// Package miscoding measures how poorly a set of features encodes a target.
//
// For a single feature x and target y, with L the optimal code length of
// package codelen:
//
//	regular(x) = (L(x,y) − min(L(x), L(y))) / max(L(x), L(y))
//
// 0 means x and y determine each other, 1 means x carries no usable
// information about y (also the value when both are constant).
//
// Three views of the per-feature vector are exposed (see Mode):
//
//	Regular  — the raw values above.
//	Adjusted — (1 − regular) normalised to sum 1; a relevance distribution.
//	Partial  — adjusted − regular/Σregular; signed contributions, may be < 0.
//
// The miscoding of a feature subset (a ViU mask) is
//
//	top = 1 + Σ partial[partial < 0]
//	subset(viu) = max(0, top − Σ_{j∈viu} partial[j])
//
// so adding a relevant feature lowers the score and adding noise raises it.
// Model miscoding is the subset miscoding of the features the model reads.
//
// Errors:
//   - ErrNotFitted       — any query before Fit.
//   - ErrInvalidMode     — bad mode string or an unsupported mode for a query.
//   - ErrInvalidArgument — out-of-range feature, lags, or mask length.
package miscoding
