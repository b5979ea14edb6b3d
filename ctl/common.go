package ctl

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lleo/go-hamt-bits/hashkey"
	"github.com/lleo/go-hamt-bits/logger"
)

// cmdIO is the output side shared by every command.
type cmdIO struct {
	logDest logger.Logger
	stdout  io.Writer
}

func newCmdIO(logdest logger.Logger, stdout io.Writer) cmdIO {
	if logdest == nil {
		logdest = logger.NopLogger
	}
	return cmdIO{logDest: logdest, stdout: stdout}
}

// Logger returns the logger the command writes diagnostics to.
func (c *cmdIO) Logger() logger.Logger {
	return c.logDest
}

// SetLogger replaces the logger, for callers that only know the verbosity
// once flags are parsed.
func (c *cmdIO) SetLogger(l logger.Logger) {
	c.logDest = l
}

// ErrInvalidIndex is returned when a slot argument is not in
// [0, hashkey.TableCapacity).
var ErrInvalidIndex = errors.New("invalid slot index")

// parseIndex parses a slot number given on the command line.
func parseIndex(s string) (hashkey.LevelIndex, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || uint(n) >= hashkey.TableCapacity {
		return 0, errors.Wrapf(ErrInvalidIndex, "%q: must be 0-%d", s, hashkey.TableCapacity-1)
	}
	return hashkey.LevelIndex(n), nil
}

// pathString renders the slot of p at levels [0, depth) as "/%02d/%02d...".
// Levels past hashkey.MaxDepth come from the rehashed Path.
func pathString(p hashkey.Path, depth uint) string {
	var s = ""
	for level := uint(0); level < depth; level++ {
		if level > 0 && level%hashkey.Levels == 0 {
			s += " |"
		}
		s += "/" + p.Index(level).String()
	}
	if s == "" {
		return "/"
	}
	return s
}
