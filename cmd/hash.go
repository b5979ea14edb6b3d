package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lleo/go-hamt-bits/ctl"
	"github.com/lleo/go-hamt-bits/hashkey"
)

func newHashCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := ctl.NewHashCommand(nil, stdout)
	ccmd := &cobra.Command{
		Use:   "hash KEY...",
		Short: "Print the hash and per-level slot indexes of keys.",
		Long: `
Hash each KEY and print its 64bit hash followed by its hash path, the 5bit slot
index at every level of the trie. A 64bit hash covers 12 levels; deeper levels
are taken from a rehash of the key with the next seed and are shown after a '|'.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd.SetLogger(commandLogger(c, stderr))
			cmd.Keys = args
			return cmd.Run(context.Background())
		},
	}

	flags := ccmd.Flags()
	flags.StringVarP(&cmd.Algorithm, "algorithm", "a", cmd.Algorithm,
		fmt.Sprintf("hash algorithm, one of: %s", strings.Join(hashkey.Algorithms(), ", ")))
	flags.UintVarP(&cmd.Depth, "depth", "d", cmd.Depth, "number of levels of hash path to print")
	return ccmd
}
