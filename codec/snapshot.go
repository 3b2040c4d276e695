// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/LVivona/mrkle"
	"github.com/LVivona/mrkle/hasher"
)

var snapshotMagic = [4]byte{'M', 'R', 'K', 'L'}

const snapshotVersion1 = uint16(1)

// EncodeSnapshot serializes t's full level-order digest layout as:
//
//	header: { magic: "MRKL", version: u16, hasher-name-len: u16,
//	          hasher-name: utf8, leaf-count: u64 }
//	body:   { level-count: u64, (level-len: u64, digests: Hash x level-len) x level-count }
func EncodeSnapshot(t *mrkle.Tree) []byte {
	e := &encoder{}
	e.bytes(snapshotMagic[:])
	e.u16(snapshotVersion1)
	name := t.Hasher().Name()
	e.u16(uint16(len(name)))
	e.bytes([]byte(name))
	e.u64(uint64(t.Len()))

	levels := t.LevelOrder()
	e.u64(uint64(len(levels)))
	for _, level := range levels {
		e.u64(uint64(len(level)))
		for _, h := range level {
			e.bytes(h)
		}
	}
	return e.buf
}

// DecodeSnapshot parses a snapshot previously written by EncodeSnapshot
// and reconstructs the Tree it describes, resolving the hasher by the
// name recorded in the header via hasher.Lookup.
func DecodeSnapshot(data []byte) (*mrkle.Tree, error) {
	d := newDecoder(data)
	magic, err := d.bytes(4)
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	if string(magic) != string(snapshotMagic[:]) {
		return nil, newError("DecodeSnapshot", ErrBadMagic)
	}
	version, err := d.u16()
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	if version != snapshotVersion1 {
		return nil, newError("DecodeSnapshot", ErrBadVersion)
	}
	nameLen, err := d.u16()
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	nameBytes, err := d.bytes(int(nameLen))
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	name := string(nameBytes)
	h, lookupErr := hasher.Lookup(name)
	if lookupErr != nil {
		return nil, newError("DecodeSnapshot", lookupErr)
	}

	if _, err := d.u64(); err != nil { // leaf-count, re-derived from level 0 below
		return nil, newError("DecodeSnapshot", err)
	}

	levelCount, err := d.u64()
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	levels := make([][]mrkle.Hash, levelCount)
	for i := range levels {
		levelLen, err := d.u64()
		if err != nil {
			return nil, newError("DecodeSnapshot", err)
		}
		level := make([]mrkle.Hash, levelLen)
		for j := range level {
			hv, err := d.hash(h.Size())
			if err != nil {
				return nil, newError("DecodeSnapshot", err)
			}
			level[j] = hv
		}
		levels[i] = level
	}
	if !d.done() {
		return nil, newError("DecodeSnapshot", ErrTruncated)
	}

	t, err := mrkle.FromLevels(levels, h)
	if err != nil {
		return nil, newError("DecodeSnapshot", err)
	}
	return t, nil
}
