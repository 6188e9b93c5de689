// SPDX-License-Identifier: MIT

// Package serialize renders a trained model as a short, canonical program
// text whose compressed length measures the model's redundancy.
//
// Programs are assembled from typed tokens (keywords, identifiers, numbers,
// symbols, newlines and indentation changes) by a Builder and rendered
// once, so spacing and indentation follow one set of rules for every model
// kind. Continuous parameters of naive Bayes, SVM and neural-network models
// are discretized before rendering: only the shape of the parameter
// distribution contributes to the text, not the last digits of each weight.
// Tree thresholds are rendered with three decimals; linear regression
// coefficients with full precision.
//
// Output is deterministic: the same model always renders to the same
// string.
package serialize
