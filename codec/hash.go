// SPDX-License-Identifier: Apache-2.0

package codec

import "github.com/LVivona/mrkle"

// EncodeHash appends h's raw bytes to the wire form. The digest size is
// not self-describing; callers decode with the size implied by the
// hasher in use.
func EncodeHash(h mrkle.Hash) []byte {
	out := make([]byte, len(h))
	copy(out, h)
	return out
}

// DecodeHash reads exactly size bytes from data and returns them as a Hash.
func DecodeHash(data []byte, size int) (mrkle.Hash, error) {
	if len(data) != size {
		return nil, newError("DecodeHash", ErrSizeMismatch)
	}
	out := make(mrkle.Hash, size)
	copy(out, data)
	return out, nil
}

func (d *decoder) hash(size int) (mrkle.Hash, error) {
	b, err := d.bytes(size)
	if err != nil {
		return nil, err
	}
	out := make(mrkle.Hash, size)
	copy(out, b)
	return out, nil
}
