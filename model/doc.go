// SPDX-License-Identifier: MIT

// Package model defines the contract between the scoring engine and the
// learning algorithms it scores.
//
// Two layers:
//
//  1. Capabilities — small interfaces an estimator may implement:
//     Estimator (Fit/Predict), ProbaPredictor, Scorer, Describer and
//     TreeEstimator (adds the cost-complexity pruning path).
//  2. Model — a closed tagged variant describing the *structure* of a
//     trained estimator: NaiveBayes, DecisionTree, LinearSVC, PolySVC, MLP,
//     LinearRegression, LinearSVR. Only this package can add kinds; every
//     consumer (attributes in use, serialization) switches over a fixed set.
//
// An estimator is resolved to its Model once, through Describe. Estimators
// without a description are reported with ErrUnsupported naming their Go
// type.
//
// Decision trees are stored as a node arena: nodes reference their
// children by index and leaves carry -1 in both child slots. Consumers walk
// the arena iteratively, never recursively.
package model
