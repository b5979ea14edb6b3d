package hashkey

import (
	"encoding/binary"
	"hash"
)

// Key is anything that can be hashed into a HAMT. Hash writes a canonical
// byte form of the key into h; keys that are equal must write the same
// bytes.
type Key interface {
	Hash(h hash.Hash64)
}

// StringKey is a Key for string values.
type StringKey string

func (k StringKey) Hash(h hash.Hash64) {
	// hash.Hash.Write never returns an error.
	_, _ = h.Write([]byte(k))
}

// BytesKey is a Key for byte slices.
type BytesKey []byte

func (k BytesKey) Hash(h hash.Hash64) {
	_, _ = h.Write(k)
}

// Uint64Key is a Key for integers; it hashes the little-endian encoding.
type Uint64Key uint64

func (k Uint64Key) Hash(h hash.Hash64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	_, _ = h.Write(buf[:])
}
