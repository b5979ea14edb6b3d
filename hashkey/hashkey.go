/*
Package hashkey turns keys into 64bit hash values and slices those values
into the 5bit indexes that route a key through the levels of a Hash Array
Mapped Trie (HAMT).

The 64bits of hash are separated into twelve 5bit values, from the least
significant bits up, that constitute the hash path of a key. Level 0 is the
root table, level 1 its children, and so on. The four bits left over at the
top of the hash do not form a full 5bit window; past MaxDepth a consumer
should use a Path, which rehashes the key with a new seed for every twelve
levels it descends.
*/
package hashkey

import (
	"fmt"
	"strings"
)

// Nbits constant is the number of bits(5) of hash consumed per level of a
// HAMT.
const Nbits uint = 5

// TableCapacity constant is the number of table entries in each node of a
// HAMT; its value is 1<<Nbits (ie 2^5 == 32).
const TableCapacity uint = 1 << Nbits

// HashBits constant is the width of a HashedKey.
const HashBits uint = 64

// Levels constant is the number of full Nbits windows in a HashedKey
// (ie 64/5 == 12).
const Levels uint = HashBits / Nbits

// MaxDepth constant is the deepest level(11) with a full Nbits window; levels
// [0..MaxDepth] are usable from a single HashedKey.
const MaxDepth uint = Levels - 1

const indexMask uint64 = 1<<Nbits - 1

// HashedKey is the 64bit hash of a key.
type HashedKey uint64

// LevelIndex is the Nbits(5-bit) slot a key occupies in the table at one
// level of a HAMT. It is always in [0, TableCapacity).
type LevelIndex uint8

// Index calculates the LevelIndex of h at the given level; bits
// [level*Nbits, level*Nbits+Nbits) of the hash.
//
// Index is total. Level 12 yields the 4 leftover high bits, and any level
// past that yields 0 because the shift exceeds the hash width.
func (h HashedKey) Index(level uint) LevelIndex {
	return LevelIndex((uint64(h) >> (level * Nbits)) & indexMask)
}

// Prefix returns the low depth*Nbits bits of h; the part of the hash path
// that leads to a table at the given depth. Past Levels+1 the whole hash is
// returned.
func (h HashedKey) Prefix(depth uint) HashedKey {
	return h & HashedKey(uint64(1)<<(depth*Nbits)-1)
}

// BuildPath adds idx at the given depth to a hash path prefix.
func BuildPath(prefix HashedKey, idx LevelIndex, depth uint) HashedKey {
	return prefix | HashedKey(uint64(idx)<<(depth*Nbits))
}

// PathString creates a string of the form "/%02d/%02d..." describing the
// first depth levels of h.
//
// If you want PathString() to include the index at the current level, you
// must add one to depth.
func (h HashedKey) PathString(depth uint) string {
	if depth == 0 {
		return "/"
	}
	var strs = make([]string, depth)

	for d := uint(0); d < depth; d++ {
		strs[d] = h.Index(d).String()
	}

	return "/" + strings.Join(strs, "/")
}

// String renders the full hash path of h.
func (h HashedKey) String() string {
	return h.PathString(Levels)
}

// Mask returns the bitmap word with only the i'th bit set.
func (i LevelIndex) Mask() uint32 {
	return uint32(1) << (i & LevelIndex(indexMask))
}

func (i LevelIndex) String() string {
	return fmt.Sprintf("%02d", uint8(i))
}
