// SPDX-License-Identifier: MIT

// Package surfeit measures the redundancy of a model's description.
//
// Let l be the length of the model's program text (see package serialize)
// and k the length of its compressed form:
//
//	k ≥ l      → Floor (the text is too short to compress; DefaultFloor = 0.25)
//	L(y) < k   → 1 − L(y)/l
//	otherwise  → 1 − k/l
//
// where L(y) is the optimal code length of the target. A model that spells
// out more than the data itself needs is redundant.
package surfeit
