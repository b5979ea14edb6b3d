package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lleo/go-hamt-bits/cmd"
	"github.com/lleo/go-hamt-bits/hashkey"
)

// execRoot runs the root command with args and returns stdout and stderr.
func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rc := cmd.NewRootCommand(os.Stdin, &stdout, &stderr)
	rc.SetArgs(args)
	err := rc.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	out, _, err := execRoot(t, "--help")
	require.NoError(t, err)
	if !strings.Contains(out, "Usage:") ||
		!strings.Contains(out, "Available Commands:") ||
		!strings.Contains(out, "bitmap") {
		t.Fatalf("Expected standard usage message from RootCommand, but got: %s", out)
	}
}

func TestBitmapCommand(t *testing.T) {
	out, _, err := execRoot(t, "bitmap", "5", "7", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "population: 3\n")
	assert.Contains(t, out, "slot 01 -> 0\n")
	assert.Contains(t, out, "slot 05 -> 1\n")
	assert.Contains(t, out, "slot 07 -> 2\n")
}

func TestBitmapCommandInvalidSlot(t *testing.T) {
	_, _, err := execRoot(t, "bitmap", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid slot index")
}

func TestHashCommandFlags(t *testing.T) {
	out, _, err := execRoot(t, "hash", "-a", "fnv", "-d", "2", "aaa")
	require.NoError(t, err)

	var h = hashkey.Compute(hashkey.FNV(), hashkey.StringKey("aaa"))
	assert.Equal(t, fmt.Sprintf("aaa\t%#016x\t%s\n", uint64(h), h.PathString(2)), out)
}

func TestHashCommandVerbose(t *testing.T) {
	_, errOut, err := execRoot(t, "hash", "-v", "aaa")
	require.NoError(t, err)
	assert.Contains(t, errOut, "DEBUG: hashing 1 keys with xxh3")
}

func TestHashCommandEnv(t *testing.T) {
	t.Setenv("HAMTBITS_ALGORITHM", "blake2s")

	out, _, err := execRoot(t, "hash", "aaa")
	require.NoError(t, err)

	var h = hashkey.Compute(hashkey.Blake2s(), hashkey.StringKey("aaa"))
	assert.Contains(t, out, fmt.Sprintf("%#016x", uint64(h)))
}

func TestHashCommandConfigFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "hamtbits.toml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm = \"xxhash\"\ndepth = 1\n"), 0644))

	out, _, err := execRoot(t, "hash", "--config", path, "aaa")
	require.NoError(t, err)

	var h = hashkey.Compute(hashkey.XXHash(), hashkey.StringKey("aaa"))
	assert.Equal(t, fmt.Sprintf("aaa\t%#016x\t%s\n", uint64(h), h.PathString(1)), out)
}

func TestConfigFileUnknownOption(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "hamtbits.toml")
	require.NoError(t, os.WriteFile(path, []byte("colour = \"blue\"\n"), 0644))

	_, _, err := execRoot(t, "hash", "--config", path, "aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option in configuration file")
}

func TestPlaceCommand(t *testing.T) {
	out, _, err := execRoot(t, "place", "--level", "1", "aaa", "aab", "aac")
	require.NoError(t, err)
	assert.Contains(t, out, "bitmap: ")
	assert.Equal(t, 3, strings.Count(out, "\tslot "))
}
