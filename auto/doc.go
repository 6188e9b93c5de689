// SPDX-License-Identifier: MIT

// Package auto wraps the family search behind three estimators.
//
// Classifier and Regressor fit on (X, y), search the classifier or
// regressor families and keep the winning estimator together with the
// feature mask it was trained on. TimeSeries lag-embeds a univariate
// series first and searches autoregressive, moving-average and exponential
// smoothing models.
//
// Predict, PredictProba and Score select the winning mask's columns before
// delegating, so callers always pass the full feature matrix.
//
//	clf := auto.NewClassifier(auto.WithFactories(f))
//	if err := clf.Fit(X, y); err != nil { ... }
//	labels, err := clf.Predict(Xtest)
package auto
