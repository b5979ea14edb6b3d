package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/lleo/go-hamt-bits/bitmap"
	"github.com/lleo/go-hamt-bits/hashkey"
	"github.com/lleo/go-hamt-bits/logger"
)

// BitmapCommand builds a table bitmap from slot numbers and reports the
// dense position of slots in it.
type BitmapCommand struct {
	// Indexes are set in the order given.
	Indexes []string

	// Lookup lists the slots to report; every present slot when empty.
	Lookup []string

	cmdIO
}

// NewBitmapCommand returns a new instance of BitmapCommand.
func NewBitmapCommand(logdest logger.Logger, stdout io.Writer) *BitmapCommand {
	return &BitmapCommand{
		cmdIO: newCmdIO(logdest, stdout),
	}
}

// Run prints the bitmap, its population, and the SparseIndex of each
// looked up slot.
func (cmd *BitmapCommand) Run(_ context.Context) error {
	var b = bitmap.Empty()
	for _, s := range cmd.Indexes {
		idx, err := parseIndex(s)
		if err != nil {
			return err
		}
		if b.IsSet(idx) {
			cmd.logDest.Debugf("slot %s already set", idx)
		}
		b = b.Set(idx)
	}

	var lookup []hashkey.LevelIndex
	for _, s := range cmd.Lookup {
		idx, err := parseIndex(s)
		if err != nil {
			return err
		}
		lookup = append(lookup, idx)
	}
	if len(lookup) == 0 {
		lookup = b.Indexes()
	}

	fmt.Fprintf(cmd.stdout, "bitmap: %s\n", b)
	fmt.Fprintf(cmd.stdout, "population: %d\n", b.Population())
	for _, idx := range lookup {
		fmt.Fprintf(cmd.stdout, "slot %s -> %s\n", idx, b.SparseIndex(idx))
	}
	return nil
}
