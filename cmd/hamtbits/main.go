/*
This is the entrypoint for the hamtbits binary.
*/
package main

import (
	"fmt"
	"os"

	"github.com/lleo/go-hamt-bits/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
