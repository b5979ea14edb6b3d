package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/lleo/go-hamt-bits/ctl"
)

func newBitmapCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := ctl.NewBitmapCommand(nil, stdout)
	ccmd := &cobra.Command{
		Use:   "bitmap SLOT...",
		Short: "Build a table bitmap and show dense positions of slots.",
		Long: `
Set each SLOT (0-31) in a table bitmap, in the order given, then print the
bitmap, its population and the position in the dense node slice of every
present slot, or of each --lookup slot.
`,
		RunE: func(c *cobra.Command, args []string) error {
			cmd.SetLogger(commandLogger(c, stderr))
			cmd.Indexes = args
			return cmd.Run(context.Background())
		},
	}

	flags := ccmd.Flags()
	flags.StringSliceVarP(&cmd.Lookup, "lookup", "l", nil, "slots to report instead of every present slot")
	return ccmd
}
