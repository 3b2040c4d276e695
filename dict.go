// SPDX-License-Identifier: Apache-2.0

package mrkle

import (
	"encoding/binary"

	"github.com/LVivona/mrkle/hasher"
)

// KV is one entry of a caller-supplied ordered key/value sequence, as
// consumed by BuildFromDict.
type KV struct {
	Key   string
	Value []byte
}

// LeafFormat selects the byte layout BuildFromDict uses to turn a KV
// pair into a single leaf payload.
type LeafFormat int

const (
	// FlattenFormat lays out a leaf as key ‖ 0x1F ‖ value. The 0x1F
	// (ASCII unit separator) keeps leaves human-greppable in debug
	// dumps but is ambiguous if a key itself contains 0x1F.
	FlattenFormat LeafFormat = iota

	// KeyThenValueFormat length-prefixes both key and value, so it
	// stays unambiguous for arbitrary byte content.
	KeyThenValueFormat

	// ValueOnlyFormat hashes only the value; the key contributes to
	// leaf order but not to the leaf's digest.
	ValueOnlyFormat
)

const unitSeparator = 0x1f

// BuildFromDict flattens entries into a leaf sequence per format,
// preserving entries' order, and builds a Tree from the result.
func BuildFromDict(entries []KV, h hasher.Hasher, format LeafFormat) (*Tree, error) {
	leaves := make([][]byte, len(entries))
	for i, e := range entries {
		leaves[i] = encodeLeaf(e, format)
	}
	return Build(leaves, h)
}

func encodeLeaf(e KV, format LeafFormat) []byte {
	switch format {
	case KeyThenValueFormat:
		key := []byte(e.Key)
		buf := make([]byte, 0, 4+len(key)+4+len(e.Value))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(key)))
		buf = append(buf, key...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Value)))
		buf = append(buf, e.Value...)
		return buf
	case ValueOnlyFormat:
		out := make([]byte, len(e.Value))
		copy(out, e.Value)
		return out
	default: // FlattenFormat
		key := []byte(e.Key)
		buf := make([]byte, 0, len(key)+1+len(e.Value))
		buf = append(buf, key...)
		buf = append(buf, unitSeparator)
		buf = append(buf, e.Value...)
		return buf
	}
}
