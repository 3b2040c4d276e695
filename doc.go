// SPDX-License-Identifier: Apache-2.0

// Package mrkle implements a hash-agnostic binary Merkle tree: construction
// from an ordered leaf sequence, single- and multi-leaf inclusion proofs,
// and a portable binary codec for hashes, proofs, and tree snapshots.
//
// The tree uses domain-separated leaf and interior hashing (0x00 and 0x01
// prefixes) and a Bitcoin-style duplicate-last rule for odd-sized levels,
// rather than padding to a power of two with a zero leaf. Hashing itself
// is delegated to a pluggable Hasher capability (see the hasher package);
// this package has no opinion on which algorithm is used.
package mrkle
