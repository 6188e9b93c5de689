// SPDX-License-Identifier: MIT

// Package nescience scores trained models with the minimum description
// length criterion "nescience" and uses that score to search for a good
// model automatically.
//
// What is nescience?
//
//	How much we still do not know about a target y given features X and a
//	model M, built from three measures in [0, 1]:
//		• miscoding  – how poorly the chosen features encode y
//		• inaccuracy – how poorly M's predictions encode y
//		• surfeit    – how redundant M's own description is
//	and combined by one of six aggregation methods (harmonic mean by default).
//	Lower is better.
//
// Packages, leaves first:
//
//	dataset/    — immutable (X, y) with feature kinds, ViU masks, lag embedding
//	discretize/ — uniform-width binning and categorical relabeling
//	codelen/    — optimal code length of one variable or a joint pair
//	model/      — closed set of model descriptions + estimator contracts
//	miscoding/  — per-feature, subset, model and cross miscoding
//	inaccuracy/ — inaccuracy of a predictor or of raw predictions
//	codec/      — bzip2 (default), lzma, zlib and zstd compressors
//	serialize/  — canonical source text of a model description
//	surfeit/    — redundancy of a model's canonical text
//	nescience/  — the aggregated score
//	linear/     — least squares and fixed-weight linear models
//	bayes/      — multinomial naive Bayes
//	search/     — greedy family, hyperparameter, architecture and feature search
//	auto/       — Classifier, Regressor and TimeSeries built on search
//
// Quick start:
//
//	clf := auto.NewClassifier(auto.WithFactories(f))
//	if err := clf.Fit(X, y); err != nil { ... }
//	best, _ := clf.Best() // family, score, feature mask
//
// Learning algorithms beyond the two in-module estimators are injected as
// factories (see search.Factories) so any implementation of model.Estimator
// that also describes itself through model.Describer can be scored.
//
//	go get github.com/katalvlaran/nescience
package nescience
