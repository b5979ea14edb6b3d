package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/lleo/go-hamt-bits/ctl"
)

func newPlaceCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := ctl.NewPlaceCommand(nil, stdout)
	ccmd := &cobra.Command{
		Use:   "place KEY...",
		Short: "Place keys into one compressed table at a trie level.",
		Long: `
Insert each KEY, in the order given, into a single compressed table using its
slot at --level. Prints the resulting bitmap, then for every key the slot, the
dense position it was inserted at and the position it ends up at. Keys whose
slot is already taken are reported as colliding; in a trie they would push a
new table one level down.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.SetLogger(commandLogger(c, stderr))
			cmd.Keys = args
			return cmd.Run(context.Background())
		},
	}

	flags := ccmd.Flags()
	flags.StringVarP(&cmd.Algorithm, "algorithm", "a", cmd.Algorithm, "hash algorithm")
	flags.UintVarP(&cmd.Level, "level", "L", 0, "trie level whose slot index places each key")
	return ccmd
}
