// SPDX-License-Identifier: Apache-2.0

package hasher

import (
	"bytes"
	"testing"
)

func TestBuiltinRegistrySizes(t *testing.T) {
	cases := []struct {
		name string
		size int
	}{
		{"sha1", 20},
		{"sha224", 28},
		{"sha256", 32},
		{"sha384", 48},
		{"sha512", 64},
		{"keccak224", 28},
		{"keccak256", 32},
		{"keccak384", 48},
		{"keccak512", 64},
		{"blake2b512", 64},
		{"blake2s256", 32},
	}
	for _, c := range cases {
		h, err := Lookup(c.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c.name, err)
		}
		if h.Size() != c.size {
			t.Errorf("%s: Size() = %d, want %d", c.name, h.Size(), c.size)
		}
		st := h.New()
		if st.Size() != c.size {
			t.Errorf("%s: New().Size() = %d, want %d", c.name, st.Size(), c.size)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("md5"); err != ErrUnknown {
		t.Fatalf("Lookup(unknown) error = %v, want ErrUnknown", err)
	}
}

func TestSumDeterministic(t *testing.T) {
	h, err := Lookup("sha256")
	if err != nil {
		t.Fatal(err)
	}
	a := Sum(h, 0x00, []byte("leaf"))
	b := Sum(h, 0x00, []byte("leaf"))
	if !bytes.Equal(a, b) {
		t.Fatalf("Sum not deterministic: %x != %x", a, b)
	}
	c := Sum(h, 0x01, []byte("leaf"))
	if bytes.Equal(a, c) {
		t.Fatalf("domain tag did not change digest")
	}
}

func TestSumMultiPartMatchesConcatenation(t *testing.T) {
	h, err := Lookup("sha256")
	if err != nil {
		t.Fatal(err)
	}
	left := []byte("left-digest-bytes-000000000000aa")
	right := []byte("right-digest-bytes-00000000000bb")
	multi := Sum(h, 0x01, left, right)
	single := Sum(h, 0x01, append(append([]byte{}, left...), right...))
	if !bytes.Equal(multi, single) {
		t.Fatalf("multi-part Sum diverged from concatenated Sum")
	}
}

func TestPoolProducesSameDigestAsDirect(t *testing.T) {
	h, err := Lookup("sha256")
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(h)
	want := Sum(h, 0x00, []byte("payload"))
	got := pool.Sum(0x00, []byte("payload"))
	if !bytes.Equal(want, got) {
		t.Fatalf("pooled Sum = %x, want %x", got, want)
	}
}

func TestPoolReusesState(t *testing.T) {
	h, err := Lookup("sha256")
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(h)
	st := pool.Get()
	st.Write([]byte("garbage"))
	pool.Put(st)

	got := pool.Get()
	got.Write([]byte{0x00})
	got.Write([]byte("payload"))
	sum := got.Sum(nil)

	want := Sum(h, 0x00, []byte("payload"))
	if !bytes.Equal(sum, want) {
		t.Fatalf("pooled state leaked prior writes: got %x, want %x", sum, want)
	}
}

func TestCloneStateRoundTrip(t *testing.T) {
	h, err := Lookup("sha256")
	if err != nil {
		t.Fatal(err)
	}
	st := h.New()
	st.Write([]byte("partial-"))

	clone, ok := CloneState(h, st)
	if !ok {
		t.Fatal("expected sha256 state to support cloning")
	}
	st.Write([]byte("input"))
	clone.Write([]byte("input"))

	if !bytes.Equal(st.Sum(nil), clone.Sum(nil)) {
		t.Fatalf("cloned state diverged from original")
	}
}
