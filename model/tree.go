// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"sort"
)

// Leaf marks an absent child.
const Leaf = -1

// TreeNode is one arena slot. Split nodes test x[Feature] < Threshold and
// continue to Left (true) or Right (false). Leaves have Left == Right == Leaf
// and carry Value: per-class weights for classifiers, a single fitted value
// for regressors.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     []float64
}

// IsLeaf reports whether n has no children.
func (n TreeNode) IsLeaf() bool { return n.Left == Leaf && n.Right == Leaf }

// DecisionTree is a binary decision tree stored as an arena; Nodes[0] is
// the root.
type DecisionTree struct {
	Nodes      []TreeNode
	Classes    []float64
	Regression bool
}

// Size returns the number of nodes.
func (t *DecisionTree) Size() int { return len(t.Nodes) }

// SplitFeatures returns the distinct features tested by split nodes, sorted
// ascending.
func (t *DecisionTree) SplitFeatures() []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, n := range t.Nodes {
		if n.IsLeaf() {
			continue
		}
		if _, ok := seen[n.Feature]; !ok {
			seen[n.Feature] = struct{}{}
			out = append(out, n.Feature)
		}
	}
	sort.Ints(out)

	return out
}

// Validate checks the arena shape: a non-empty node list, in-range child
// indices, both-or-neither children, non-negative split features, and a
// tree layout where every node is reachable from the root exactly once.
//
// Complexity: O(N) time and memory.
func (t *DecisionTree) Validate() error {
	n := len(t.Nodes)
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidTree)
	}

	visited := make([]bool, n)
	stack := []int{0}
	var id int
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			return fmt.Errorf("%w: node %d reached twice", ErrInvalidTree, id)
		}
		visited[id] = true

		node := t.Nodes[id]
		if node.IsLeaf() {
			continue
		}
		if node.Left == Leaf || node.Right == Leaf {
			return fmt.Errorf("%w: node %d has a single child", ErrInvalidTree, id)
		}
		if node.Left < 0 || node.Left >= n || node.Right < 0 || node.Right >= n {
			return fmt.Errorf("%w: node %d child out of range", ErrInvalidTree, id)
		}
		if node.Feature < 0 {
			return fmt.Errorf("%w: node %d has negative feature", ErrInvalidTree, id)
		}
		stack = append(stack, node.Right, node.Left)
	}
	for id = range visited {
		if !visited[id] {
			return fmt.Errorf("%w: node %d unreachable", ErrInvalidTree, id)
		}
	}

	return nil
}
