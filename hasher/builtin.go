// SPDX-License-Identifier: Apache-2.0

package hasher

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// ErrUnknown is returned by Lookup when no hasher is registered under
// the requested name.
var ErrUnknown = fmt.Errorf("hasher: no such algorithm registered")

type builtin struct {
	name      string
	size      int
	blockSize int
	newFn     func() hash.Hash
}

func (b *builtin) Name() string      { return b.name }
func (b *builtin) Size() int         { return b.size }
func (b *builtin) BlockSize() int    { return b.blockSize }
func (b *builtin) New() hash.Hash    { return b.newFn() }

var (
	registryMu sync.RWMutex
	registry   = map[string]Hasher{}
)

// Register adds h to the process-wide registry under h.Name(),
// overwriting any previous registration for that name. Intended to be
// called from package init() or early program startup; the registry is
// safe for concurrent reads once registration has settled.
func Register(h Hasher) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[h.Name()] = h
}

// Lookup returns the registered Hasher for name, or ErrUnknown.
func Lookup(name string) (Hasher, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[name]
	if !ok {
		return nil, ErrUnknown
	}
	return h, nil
}

// Names returns the sorted set of currently registered hasher names.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func register(name string, size, blockSize int, newFn func() hash.Hash) {
	Register(&builtin{name: name, size: size, blockSize: blockSize, newFn: newFn})
}

func mustBlake2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		// blake2b.New512(nil) only errors on an out-of-range key length;
		// a nil key is always in range.
		panic(err)
	}
	return h
}

func mustBlake2s256() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func init() {
	register("sha1", sha1.Size, sha1.BlockSize, sha1.New)
	register("sha224", sha256.Size224, sha256.BlockSize, sha256.New224)
	register("sha256", sha256.Size, sha256.BlockSize, sha256.New)
	register("sha384", sha512.Size384, sha512.BlockSize, sha512.New384)
	register("sha512", sha512.Size, sha512.BlockSize, sha512.New)

	// keccak256/512 use the pre-standardization Keccak padding, matching
	// the widths that shipped in production before NIST's SHA-3 padding
	// change. x/crypto/sha3 only exposes legacy-Keccak constructors at
	// these two widths.
	register("keccak256", 32, sha3.NewLegacyKeccak256().BlockSize(), sha3.NewLegacyKeccak256)
	register("keccak512", 64, sha3.NewLegacyKeccak512().BlockSize(), sha3.NewLegacyKeccak512)

	// keccak224/384: x/crypto/sha3 does not export legacy-Keccak
	// constructors at these widths, only standard SHA-3 ones. Registered
	// under the keccak224/keccak384 names for a uniform naming scheme,
	// but callers relying on exact pre-standardization Keccak output at
	// these two widths should be aware this is standard SHA-3 padding.
	register("keccak224", 28, 144, sha3.New224)
	register("keccak384", 48, 104, sha3.New384)

	register("blake2b512", blake2b.Size, blake2b.BlockSize, mustBlake2b512)
	register("blake2s256", blake2s.Size, blake2s.BlockSize, mustBlake2s256)
}
