/*
Package bitmap implements the presence bitmap of a compressed HAMT table.

A table with TableCapacity(32) slots stores only the nodes that are present,
in a dense slice. The Bitmap records which slots are present: the i'th bit is
set when slot i has a node. The dense slice holds the nodes in ascending slot
order, so the node for slot i lives at the position equal to the number of
bits set below bit i (its rank).

For example, slots 1, 5 and 7 populated give the bitmap

	00 0000000000 0000000000 0010100010

and a dense slice of 3 nodes ordered | n1 | n5 | n7 |. SparseIndex(5) is 1.

Bitmaps are values. Set and Clear return a new Bitmap and leave the receiver
alone, so an old table and its successor can share everything but the word
and the slice that changed. Keeping Population() equal to the length of the
dense slice is the owning table's job.
*/
package bitmap

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lleo/go-hamt-bits/hashkey"
)

// Bitmap is the 32bit presence word of one table.
type Bitmap uint32

// ArrayIndex is a position in a table's dense slice, or NotFound.
type ArrayIndex uint8

// NotFound is the ArrayIndex returned by SparseIndex for an absent slot. It is
// larger than any Population() of a 32bit Bitmap, so it can never be a real
// position.
const NotFound ArrayIndex = 0xff

// Found reports whether a is a real position.
func (a ArrayIndex) Found() bool {
	return a != NotFound
}

// Int returns a as an int suitable for indexing a slice. It must only be
// called when a.Found().
func (a ArrayIndex) Int() int {
	return int(a)
}

func (a ArrayIndex) String() string {
	if a == NotFound {
		return "NotFound"
	}
	return fmt.Sprintf("%d", uint8(a))
}

// Empty returns the Bitmap of a table with no entries.
func Empty() Bitmap {
	return 0
}

// Singleton returns the Bitmap of a table whose only entry is at idx.
func Singleton(idx hashkey.LevelIndex) Bitmap {
	return Bitmap(idx.Mask())
}

// IsEmpty returns true if no slot is present.
func (b Bitmap) IsEmpty() bool {
	return b == 0
}

// Population returns the number of present slots; the length of the dense
// slice.
func (b Bitmap) Population() int {
	return bits.OnesCount32(uint32(b))
}

// IsSet returns true if the slot idx is present.
func (b Bitmap) IsSet(idx hashkey.LevelIndex) bool {
	return uint32(b)&idx.Mask() != 0
}

// Set returns b with slot idx present. Setting a present slot returns b.
func (b Bitmap) Set(idx hashkey.LevelIndex) Bitmap {
	return b | Bitmap(idx.Mask())
}

// Clear returns b with slot idx absent. Clearing an absent slot returns b.
func (b Bitmap) Clear(idx hashkey.LevelIndex) Bitmap {
	return b &^ Bitmap(idx.Mask())
}

// rank counts the present slots below idx.
func (b Bitmap) rank(idx hashkey.LevelIndex) ArrayIndex {
	// mask off every bit at or above the idx'th bit
	var m = idx.Mask() - 1
	return ArrayIndex(bits.OnesCount32(uint32(b) & m))
}

// SparseIndex returns the position in the dense slice of the node at slot
// idx, or NotFound if the slot is absent.
func (b Bitmap) SparseIndex(idx hashkey.LevelIndex) ArrayIndex {
	if !b.IsSet(idx) {
		return NotFound
	}
	return b.rank(idx)
}

// InsertionPosition returns the position in the dense slice where a node for
// slot idx goes, whether or not the slot is present. It never returns
// NotFound; InsertionPosition(idx) == b.Set(idx).SparseIndex(idx).
func (b Bitmap) InsertionPosition(idx hashkey.LevelIndex) ArrayIndex {
	return b.rank(idx)
}

// Indexes returns the present slots from lowest to highest; the order the
// dense slice stores them in.
func (b Bitmap) Indexes() []hashkey.LevelIndex {
	var idxs = make([]hashkey.LevelIndex, 0, b.Population())
	for w := uint32(b); w != 0; w &= w - 1 {
		idxs = append(idxs, hashkey.LevelIndex(bits.TrailingZeros32(w)))
	}
	return idxs
}

// Binary renders b as 32 binary digits, most significant bit first.
func (b Bitmap) Binary() string {
	return fmt.Sprintf("%032b", uint32(b))
}

// String renders b as binary digits split in groups of 2, 10, 10 and 10 bits
// from the most significant bit down.
func (b Bitmap) String() string {
	var strs = make([]string, 4)

	var top2 = uint32(b) >> 30
	strs[0] = fmt.Sprintf("%02b", top2)

	const tenBitMask uint32 = 1<<10 - 1
	for i := uint(0); i < 3; i++ {
		tenBitVal := (uint32(b) >> (i * 10)) & tenBitMask
		strs[3-i] = fmt.Sprintf("%010b", tenBitVal)
	}

	return strings.Join(strs, " ")
}
