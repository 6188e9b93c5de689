// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/nescience/dataset"
)

// AttributesInUse returns the mask of the p features m reads when
// predicting. Decision trees use exactly their split features; every other
// kind reads the whole input vector.
func AttributesInUse(m Model, p int) (dataset.ViU, error) {
	switch v := m.(type) {
	case *DecisionTree:
		viu := dataset.NewViU(p)
		for _, j := range v.SplitFeatures() {
			if j >= p {
				return nil, fmt.Errorf("%w: split feature %d of %d", ErrInvalidTree, j, p)
			}
			viu[j] = true
		}

		return viu, nil
	case *NaiveBayes, *LinearSVC, *PolySVC, *MLP, *LinearRegression, *LinearSVR:
		return dataset.AllViU(p), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, m)
	}
}
