// SPDX-License-Identifier: Apache-2.0

package mrkle

import "testing"

func TestLevelOrderAndFromLevelsRoundTrip(t *testing.T) {
	h := sha256Hasher(t)
	tr, err := Build(leaves(11), h)
	if err != nil {
		t.Fatal(err)
	}
	levels := tr.LevelOrder()
	rebuilt, err := FromLevels(levels, h)
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt.Root().Equal(tr.Root()) {
		t.Fatalf("rebuilt root = %x, want %x", rebuilt.Root(), tr.Root())
	}
	if rebuilt.Len() != tr.Len() || rebuilt.Depth() != tr.Depth() {
		t.Fatalf("rebuilt Len/Depth = %d/%d, want %d/%d",
			rebuilt.Len(), rebuilt.Depth(), tr.Len(), tr.Depth())
	}
}

func TestFromLevelsRejectsInconsistentLevel(t *testing.T) {
	h := sha256Hasher(t)
	tr, err := Build(leaves(5), h)
	if err != nil {
		t.Fatal(err)
	}
	levels := tr.LevelOrder()
	levels[1] = append(levels[1], Hash{0x00})
	if _, err := FromLevels(levels, h); err == nil {
		t.Fatal("expected FromLevels to reject a level of the wrong size")
	}
}

func TestLeafDigestOutOfRange(t *testing.T) {
	h := sha256Hasher(t)
	tr, err := Build(leaves(3), h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.LeafDigest(3); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
