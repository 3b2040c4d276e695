// SPDX-License-Identifier: Apache-2.0

package mrkle

import "github.com/LVivona/mrkle/hasher"

// FromLevels rebuilds a Tree from a level-order digest list (leaves
// first, root last) without recomputing any hash. It is the inverse of
// Tree.LevelOrder, used by the codec to reconstruct a Tree from a
// decoded snapshot. The caller is trusting the supplied digests; FromLevels
// checks only structural consistency (each level folds to the expected
// parent count), not that the digests were produced by h.
func FromLevels(levelDigests [][]Hash, h hasher.Hasher) (*Tree, error) {
	if len(levelDigests) == 0 || len(levelDigests[0]) == 0 {
		return nil, newTreeError("FromLevels", ErrEmptyTree)
	}

	nodes := make([]node, 0, 2*len(levelDigests[0]))
	parent := make([]int, 0, 2*len(levelDigests[0]))
	appendNode := func(nd node) int {
		nodes = append(nodes, nd)
		parent = append(parent, -1)
		return len(nodes) - 1
	}

	levels := make([][]int, len(levelDigests))
	level0 := make([]int, len(levelDigests[0]))
	for i, d := range levelDigests[0] {
		level0[i] = appendNode(node{digest: d, kind: leafNode})
	}
	levels[0] = level0

	cur := level0
	for d := 1; d < len(levelDigests); d++ {
		digests := levelDigests[d]
		expected := (len(cur) + 1) / 2
		if len(digests) != expected {
			return nil, newTreeError("FromLevels", ErrMalformedLevels)
		}
		next := make([]int, len(digests))
		for p, digest := range digests {
			leftPos := p * 2
			var children []int
			if leftPos+1 < len(cur) {
				children = []int{cur[leftPos], cur[leftPos+1]}
			} else {
				children = []int{cur[leftPos]}
			}
			idx := appendNode(node{digest: digest, kind: interiorNode, children: children})
			for _, c := range children {
				parent[c] = idx
			}
			next[p] = idx
		}
		levels[d] = next
		cur = next
	}

	if len(cur) != 1 {
		return nil, newTreeError("FromLevels", ErrMalformedLevels)
	}

	return &Tree{
		hasher:    h,
		nodes:     nodes,
		leaves:    level0,
		levels:    levels,
		parent:    parent,
		rootIndex: cur[0],
	}, nil
}
