// SPDX-License-Identifier: Apache-2.0

package codec

import "github.com/LVivona/mrkle"

// EncodeProof serializes a single-leaf proof as:
//
//	[leaf-index: u64 LE] [depth: u32 LE] [ (side: u8, hash: bytes) x depth ]
func EncodeProof(p *mrkle.Proof) []byte {
	e := &encoder{}
	e.u64(uint64(p.LeafIndex))
	e.u32(uint32(len(p.Siblings)))
	for _, s := range p.Siblings {
		if s.Side == mrkle.Right {
			e.u8(1)
		} else {
			e.u8(0)
		}
		e.bytes(s.Hash)
	}
	return e.buf
}

// DecodeProof parses a single-leaf proof previously written by
// EncodeProof. hashSize is the digest size of the hasher the proof was
// built with. The leaf hash is not carried on the wire, so the returned
// proof's LeafHash is nil; mrkle.VerifyProof rejects a proof whose
// LeafHash does not match the payload's leaf digest, so the caller sets
// it (typically recomputed from the leaf payload) before verifying.
func DecodeProof(data []byte, hashSize int) (*mrkle.Proof, error) {
	d := newDecoder(data)
	leafIndex, err := d.u64()
	if err != nil {
		return nil, newError("DecodeProof", err)
	}
	depth, err := d.u32()
	if err != nil {
		return nil, newError("DecodeProof", err)
	}
	siblings := make([]mrkle.Sibling, depth)
	for i := range siblings {
		side, err := d.u8()
		if err != nil {
			return nil, newError("DecodeProof", err)
		}
		h, err := d.hash(hashSize)
		if err != nil {
			return nil, newError("DecodeProof", err)
		}
		s := mrkle.Left
		if side == 1 {
			s = mrkle.Right
		}
		siblings[i] = mrkle.Sibling{Side: s, Hash: h}
	}
	if !d.done() {
		return nil, newError("DecodeProof", ErrTruncated)
	}
	return &mrkle.Proof{LeafIndex: int(leafIndex), Siblings: siblings}, nil
}

// EncodeMultiproof serializes a batch proof as:
//
//	[leaf-count: u64 LE] [k: u64 LE] [indices: u64 LE x k]
//	[leaf-hashes: Hash x k] [d: u64 LE] [decisions: Hash x d]
func EncodeMultiproof(p *mrkle.Multiproof) []byte {
	e := &encoder{}
	e.u64(uint64(p.LeafCount))
	e.u64(uint64(len(p.Indices)))
	for _, idx := range p.Indices {
		e.u64(uint64(idx))
	}
	for _, h := range p.LeafHashes {
		e.bytes(h)
	}
	e.u64(uint64(len(p.Decisions)))
	for _, h := range p.Decisions {
		e.bytes(h)
	}
	return e.buf
}

// DecodeMultiproof parses a batch proof previously written by
// EncodeMultiproof. hashSize is the digest size of the hasher the proof
// was built with.
func DecodeMultiproof(data []byte, hashSize int) (*mrkle.Multiproof, error) {
	d := newDecoder(data)
	leafCount, err := d.u64()
	if err != nil {
		return nil, newError("DecodeMultiproof", err)
	}
	k, err := d.u64()
	if err != nil {
		return nil, newError("DecodeMultiproof", err)
	}
	indices := make([]int, k)
	for i := range indices {
		v, err := d.u64()
		if err != nil {
			return nil, newError("DecodeMultiproof", err)
		}
		indices[i] = int(v)
	}
	leafHashes := make([]mrkle.Hash, k)
	for i := range leafHashes {
		h, err := d.hash(hashSize)
		if err != nil {
			return nil, newError("DecodeMultiproof", err)
		}
		leafHashes[i] = h
	}
	numDecisions, err := d.u64()
	if err != nil {
		return nil, newError("DecodeMultiproof", err)
	}
	decisions := make([]mrkle.Hash, numDecisions)
	for i := range decisions {
		h, err := d.hash(hashSize)
		if err != nil {
			return nil, newError("DecodeMultiproof", err)
		}
		decisions[i] = h
	}
	if !d.done() {
		return nil, newError("DecodeMultiproof", ErrTruncated)
	}
	return &mrkle.Multiproof{
		Indices:    indices,
		LeafHashes: leafHashes,
		Decisions:  decisions,
		LeafCount:  int(leafCount),
	}, nil
}
