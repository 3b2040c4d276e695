// SPDX-License-Identifier: Apache-2.0

package mrkle

import "github.com/LVivona/mrkle/hasher"

// domain separation tags, prefixed to every hash input to keep leaf and
// interior digests from colliding under a second-preimage attack.
const (
	domainLeaf     byte = 0x00
	domainInterior byte = 0x01
)

// Tree is an immutable, built Merkle tree. The zero value is not usable;
// obtain a Tree via Build or BuildFromDict.
type Tree struct {
	hasher hasher.Hasher

	nodes []node

	// leaves holds the node index of each leaf, in caller order. len(leaves)
	// is the tree's leaf count.
	leaves []int

	// levels[d] holds node indices at fold-depth d, left to right, in
	// construction order. levels[0] == leaves. The final entry is
	// []int{rootIndex}.
	levels [][]int

	// parent[i] is the node index of node i's parent, or -1 for the root.
	parent []int

	rootIndex int
}

// Hasher returns the hasher the tree was built with.
func (t *Tree) Hasher() hasher.Hasher { return t.hasher }

// Root returns the digest of the tree's root node.
func (t *Tree) Root() Hash { return t.nodes[t.rootIndex].digest }

// Len returns the number of leaves in the tree.
func (t *Tree) Len() int { return len(t.leaves) }

// Depth returns the number of fold levels above the leaves; 0 for a
// single-leaf tree.
func (t *Tree) Depth() int { return len(t.levels) - 1 }

// LeafDigest returns the stored digest of leaf i (H(domainLeaf||payload)).
func (t *Tree) LeafDigest(i int) (Hash, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, newTreeError("LeafDigest", ErrNodeOutOfRange)
	}
	return t.nodes[t.leaves[i]].digest, nil
}

// LevelOrder returns every level's node digests, leaves first and root
// last, for debugging and for the codec's snapshot format.
func (t *Tree) LevelOrder() [][]Hash {
	out := make([][]Hash, len(t.levels))
	for d, level := range t.levels {
		row := make([]Hash, len(level))
		for i, idx := range level {
			row[i] = t.nodes[idx].digest
		}
		out[d] = row
	}
	return out
}
