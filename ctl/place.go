package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lleo/go-hamt-bits/bitmap"
	"github.com/lleo/go-hamt-bits/hashkey"
	"github.com/lleo/go-hamt-bits/logger"
)

// PlaceCommand routes keys into a single compressed table at one level of a
// HAMT, keeping a dense slice of keys in lockstep with the table bitmap.
type PlaceCommand struct {
	Algorithm string

	// Level selects which Nbits window of each key's hash path picks its slot.
	Level uint

	Keys []string

	cmdIO
}

// NewPlaceCommand returns a new instance of PlaceCommand.
func NewPlaceCommand(logdest logger.Logger, stdout io.Writer) *PlaceCommand {
	return &PlaceCommand{
		Algorithm: hashkey.DefaultAlgorithm,
		cmdIO:     newCmdIO(logdest, stdout),
	}
}

// placement is where one key landed in the table.
type placement struct {
	key      string
	idx      hashkey.LevelIndex
	inserted bitmap.ArrayIndex // position at arrival; NotFound on collision
	collided bool
	with     string // key already holding the slot
}

// table is a compressed table of keys: a bitmap and the dense slice it
// indexes.
type table struct {
	nodeMap bitmap.Bitmap
	keys    []string
}

func (t table) get(idx hashkey.LevelIndex) (string, bool) {
	var i = t.nodeMap.SparseIndex(idx)
	if !i.Found() {
		return "", false
	}
	return t.keys[i.Int()], true
}

// insert returns a new table with k at slot idx, and the position k was
// placed at. The receiver is left unchanged.
func (t table) insert(idx hashkey.LevelIndex, k string) (table, bitmap.ArrayIndex) {
	var i = t.nodeMap.InsertionPosition(idx).Int()

	var nt table
	nt.nodeMap = t.nodeMap.Set(idx)
	nt.keys = make([]string, len(t.keys)+1)
	copy(nt.keys, t.keys[:i])
	nt.keys[i] = k
	copy(nt.keys[i+1:], t.keys[i:])

	return nt, bitmap.ArrayIndex(i)
}

// Run places each key in arrival order, then prints for each key its slot,
// the position it was inserted at, and its final position.
func (cmd *PlaceCommand) Run(_ context.Context) error {
	alg, err := hashkey.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return errors.Wrap(err, "place")
	}
	cmd.logDest.Debugf("placing %d keys with %s at level %d", len(cmd.Keys), alg.Name(), cmd.Level)

	var t table
	var placed = make([]placement, 0, len(cmd.Keys))
	for _, k := range cmd.Keys {
		var idx = hashkey.NewPath(alg, hashkey.StringKey(k)).Index(cmd.Level)
		var pl = placement{key: k, idx: idx, inserted: bitmap.NotFound}

		if other, ok := t.get(idx); ok {
			pl.collided, pl.with = true, other
			cmd.logDest.Debugf("%q collides with %q at slot %s", k, other, idx)
		} else {
			t, pl.inserted = t.insert(idx, k)
		}
		placed = append(placed, pl)
	}

	fmt.Fprintf(cmd.stdout, "bitmap: %s\n", t.nodeMap)
	fmt.Fprintf(cmd.stdout, "population: %d\n", t.nodeMap.Population())
	for _, pl := range placed {
		if pl.collided {
			fmt.Fprintf(cmd.stdout, "%s\tslot %s\tcollides with %s\n", pl.key, pl.idx, pl.with)
			continue
		}
		fmt.Fprintf(cmd.stdout, "%s\tslot %s\tinserted at %s\tnow at %s\n",
			pl.key, pl.idx, pl.inserted, t.nodeMap.SparseIndex(pl.idx))
	}
	return nil
}
