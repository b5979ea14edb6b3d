package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lleo/go-hamt-bits/hashkey"
	"github.com/lleo/go-hamt-bits/logger"
)

// HashCommand prints the hash and hash path of keys.
type HashCommand struct {
	// Algorithm names the hash algorithm; see hashkey.Algorithms().
	Algorithm string

	// Depth is the number of levels of hash path to print. Levels past
	// hashkey.MaxDepth are served by rehashing.
	Depth uint

	Keys []string

	cmdIO
}

// NewHashCommand returns a new instance of HashCommand.
func NewHashCommand(logdest logger.Logger, stdout io.Writer) *HashCommand {
	return &HashCommand{
		Algorithm: hashkey.DefaultAlgorithm,
		Depth:     hashkey.Levels,
		cmdIO:     newCmdIO(logdest, stdout),
	}
}

// Run prints one line per key: the key, its primary hash and its hash path.
func (cmd *HashCommand) Run(_ context.Context) error {
	alg, err := hashkey.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return errors.Wrap(err, "hash")
	}
	cmd.logDest.Debugf("hashing %d keys with %s to depth %d", len(cmd.Keys), alg.Name(), cmd.Depth)

	for _, k := range cmd.Keys {
		var p = hashkey.NewPath(alg, hashkey.StringKey(k))
		fmt.Fprintf(cmd.stdout, "%s\t%#016x\t%s\n", k, uint64(p.Hash()), pathString(p, cmd.Depth))
	}
	return nil
}
