// SPDX-License-Identifier: Apache-2.0

package mrkle

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/LVivona/mrkle/hasher"
)

// parallelLeafThreshold is the leaf count above which Build hashes
// leaves across a worker pool instead of sequentially. Below it the
// goroutine dispatch overhead outweighs the saving.
const parallelLeafThreshold = 256

// Build constructs a Tree from an ordered sequence of leaf payloads
// using h. Leaf order is significant: it determines leaf indices and
// therefore the shape of every proof derived from the tree.
//
// Build hashes leaves as H(0x00||payload), then folds pairs upward with
// H(0x01||left||right) until a single root remains. A level with an odd
// node count duplicates its last node as its own right sibling for
// hashing purposes (that duplicate is never stored as a node).
//
// Build panics if h is nil; that is a programmer error, not a
// construction failure.
func Build(leaves [][]byte, h hasher.Hasher) (*Tree, error) {
	if h == nil {
		panic("mrkle: Build: nil hasher")
	}
	n := len(leaves)
	if n == 0 {
		return nil, newTreeError("Build", ErrEmptyTree)
	}

	pool := hasher.NewPool(h)
	digests := make([]Hash, n)
	if n > parallelLeafThreshold {
		hashLeavesParallel(leaves, pool, digests)
	} else {
		for i, p := range leaves {
			digests[i] = Hash(pool.Sum(domainLeaf, p))
		}
	}

	nodes := make([]node, 0, 2*n)
	parent := make([]int, 0, 2*n)
	appendNode := func(nd node) int {
		nodes = append(nodes, nd)
		parent = append(parent, -1)
		return len(nodes) - 1
	}

	level0 := make([]int, n)
	for i, d := range digests {
		level0[i] = appendNode(node{digest: d, kind: leafNode})
	}

	levels := [][]int{level0}
	cur := level0
	for len(cur) > 1 {
		next := make([]int, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			a := cur[i]
			if i+1 < len(cur) {
				b := cur[i+1]
				d := pool.Sum(domainInterior, nodes[a].digest, nodes[b].digest)
				idx := appendNode(node{digest: Hash(d), kind: interiorNode, children: []int{a, b}})
				parent[a] = idx
				parent[b] = idx
				next = append(next, idx)
			} else {
				d := pool.Sum(domainInterior, nodes[a].digest, nodes[a].digest)
				idx := appendNode(node{digest: Hash(d), kind: interiorNode, children: []int{a}})
				parent[a] = idx
				next = append(next, idx)
			}
		}
		levels = append(levels, next)
		cur = next
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

func hashLeavesParallel(leaves [][]byte, pool *hasher.Pool, out []Hash) {
	n := len(leaves)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = Hash(pool.Sum(domainLeaf, leaves[i]))
			}
			return nil
		})
	}
	_ = g.Wait() // worker closures never return an error
}
