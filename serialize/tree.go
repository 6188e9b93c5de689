// SPDX-License-Identifier: MIT

package serialize

import (
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nescience/model"
)

// thresholdDigits is the precision of rendered split thresholds.
const thresholdDigits = 3

// frame is one pending unit of tree output. elseAt marks an "else:" line
// to emit between the two subtrees of a split.
type frame struct {
	node   int
	depth  int
	elseAt bool
}

// tree renders
//
//	def tree{X1, X3}:
//	    if X1 < 0.500:
//	        return 0
//	    else:
//	        ...
//
// with an explicit stack: pre-order, left subtree first.
func tree(b *Builder, t *model.DecisionTree) error {
	if err := t.Validate(); err != nil {
		return err
	}

	name := "tree"
	if t.Regression {
		name = "regressor"
	}
	b.Keyword("def").Ident(name).Symbol("{")
	for i, f := range t.SplitFeatures() {
		if i > 0 {
			b.Symbol(",")
		}
		b.Ident(feature(f))
	}
	b.Symbol("}").Symbol(":").Newline()

	stack := []frame{{node: 0, depth: 1}}
	var top frame
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.elseAt {
			b.At(top.depth).Keyword("else").Symbol(":").Newline()
			continue
		}
		n := t.Nodes[top.node]
		if n.IsLeaf() {
			b.At(top.depth).Keyword("return")
			leafValue(b, t, n)
			b.Newline()
			continue
		}

		b.At(top.depth).Keyword("if").Ident(feature(n.Feature)).Symbol("<").
			Fixed(n.Threshold, thresholdDigits).Symbol(":").Newline()
		stack = append(stack,
			frame{node: n.Right, depth: top.depth + 1},
			frame{depth: top.depth, elseAt: true},
			frame{node: n.Left, depth: top.depth + 1},
		)
	}

	return nil
}

// leafValue writes the fitted value of a regression leaf, or the majority
// class of a classification leaf.
func leafValue(b *Builder, t *model.DecisionTree, n model.TreeNode) {
	if len(n.Value) == 0 {
		b.Int(0)

		return
	}
	if t.Regression {
		b.Fixed(n.Value[0], thresholdDigits)

		return
	}
	best := floats.MaxIdx(n.Value)
	if best < len(t.Classes) {
		b.Float(t.Classes[best])

		return
	}
	b.Int(best)
}

func feature(j int) string { return "X" + strconv.Itoa(j+1) }
