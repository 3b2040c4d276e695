// SPDX-License-Identifier: Apache-2.0

package mrkle

import "github.com/LVivona/mrkle/hasher"

// VerifyProof recomputes a candidate root from payload and proof using h,
// and reports whether it matches root. A false result with a non-nil
// error distinguishes a malformed proof from a root mismatch; both mean
// the proof did not verify.
func VerifyProof(payload []byte, proof *Proof, root Hash, h hasher.Hasher) (bool, error) {
	if proof == nil {
		return false, newProofError("VerifyProof", ErrMalformedProof)
	}
	pool := hasher.NewPool(h)
	acc := Hash(pool.Sum(domainLeaf, payload))
	if !acc.Equal(proof.LeafHash) {
		return false, newProofError("VerifyProof", ErrMalformedProof)
	}

	for _, s := range proof.Siblings {
		switch s.Side {
		case Right:
			acc = Hash(pool.Sum(domainInterior, acc, s.Hash))
		case Left:
			acc = Hash(pool.Sum(domainInterior, s.Hash, acc))
		default:
			return false, newProofError("VerifyProof", ErrMalformedProof)
		}
	}

	if !acc.Equal(root) {
		return false, newProofError("VerifyProof", ErrRootMismatch)
	}
	return true, nil
}

// VerifyMultiproof recomputes a candidate root from payloads and proof
// using h, and reports whether it matches root. payloads must be in the
// same order as proof.Indices.
func VerifyMultiproof(payloads [][]byte, proof *Multiproof, root Hash, h hasher.Hasher) (bool, error) {
	if proof == nil || len(proof.Indices) == 0 {
		return false, newProofError("VerifyMultiproof", ErrEmptyIndexSet)
	}
	if len(payloads) != len(proof.Indices) || len(proof.LeafHashes) != len(proof.Indices) {
		return false, newProofError("VerifyMultiproof", ErrMalformedProof)
	}

	pool := hasher.NewPool(h)
	known := make(map[int]Hash, len(proof.Indices)*2)
	prevIdx := -1
	for i, idx := range proof.Indices {
		if idx < 0 || idx >= proof.LeafCount {
			return false, newProofError("VerifyMultiproof", ErrInvalidIndex)
		}
		if idx <= prevIdx {
			return false, newProofError("VerifyMultiproof", ErrMalformedProof)
		}
		prevIdx = idx
		want := Hash(pool.Sum(domainLeaf, payloads[i]))
		if !want.Equal(proof.LeafHashes[i]) {
			return false, newProofError("VerifyMultiproof", ErrMalformedProof)
		}
		known[idx] = proof.LeafHashes[i]
	}

	decisions := proof.Decisions
	consume := func() (Hash, bool) {
		if len(decisions) == 0 {
			return nil, false
		}
		d := decisions[0]
		decisions = decisions[1:]
		return d, true
	}

	size := proof.LeafCount
	for size > 1 {
		nextSize := (size + 1) / 2
		next := make(map[int]Hash, nextSize)
		for p := 0; p*2 < size; p++ {
			leftPos, rightPos := p*2, p*2+1
			if rightPos >= size {
				v, ok := known[leftPos]
				if !ok {
					dv, has := consume()
					if !has {
						return false, newProofError("VerifyMultiproof", ErrMalformedProof)
					}
					v = dv
				}
				next[p] = Hash(pool.Sum(domainInterior, v, v))
				continue
			}

			lv, lok := known[leftPos]
			rv, rok := known[rightPos]
			if !lok && !rok {
				continue
			}
			if lok != rok {
				dv, has := consume()
				if !has {
					return false, newProofError("VerifyMultiproof", ErrMalformedProof)
				}
				if lok {
					rv = dv
				} else {
					lv = dv
				}
			}
			next[p] = Hash(pool.Sum(domainInterior, lv, rv))
		}
		known = next
		size = nextSize
	}

	if len(decisions) != 0 {
		return false, newProofError("VerifyMultiproof", ErrMalformedProof)
	}
	rootCandidate, ok := known[0]
	if !ok {
		return false, newProofError("VerifyMultiproof", ErrMalformedProof)
	}
	if !rootCandidate.Equal(root) {
		return false, newProofError("VerifyMultiproof", ErrRootMismatch)
	}
	return true, nil
}
