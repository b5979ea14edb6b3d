package ctl

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lleo/go-hamt-bits/bitmap"
	"github.com/lleo/go-hamt-bits/hashkey"
	"github.com/lleo/go-hamt-bits/logger"
)

func TestHashCommand_Run(t *testing.T) {
	buf := &bytes.Buffer{}
	cm := NewHashCommand(logger.NewLogfLogger(t), buf)
	cm.Algorithm = "fnv"
	cm.Keys = []string{"aaa", "aab"}

	require.NoError(t, cm.Run(context.Background()))

	var lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var h = hashkey.Compute(hashkey.FNV(), hashkey.StringKey("aaa"))
	assert.Equal(t, fmt.Sprintf("aaa\t%#016x\t%s", uint64(h), h.PathString(hashkey.Levels)), lines[0])
}

func TestHashCommand_RunPastMaxDepth(t *testing.T) {
	buf := &bytes.Buffer{}
	cm := NewHashCommand(logger.NopLogger, buf)
	cm.Depth = hashkey.Levels + 2
	cm.Keys = []string{"aaa"}

	require.NoError(t, cm.Run(context.Background()))

	var p = hashkey.NewPath(hashkey.XXH3(), hashkey.StringKey("aaa"))
	var want = p.Hash().PathString(hashkey.Levels) + " |/" +
		p.Index(hashkey.Levels).String() + "/" + p.Index(hashkey.Levels+1).String()
	assert.Contains(t, buf.String(), want)
}

func TestHashCommand_UnknownAlgorithm(t *testing.T) {
	cm := NewHashCommand(logger.NopLogger, &bytes.Buffer{})
	cm.Algorithm = "crc"

	err := cm.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, hashkey.ErrUnknownAlgorithm))
}

func TestBitmapCommand_Run(t *testing.T) {
	buf := &bytes.Buffer{}
	cm := NewBitmapCommand(logger.NewLogfLogger(t), buf)
	cm.Indexes = []string{"5", "7", "1"}

	require.NoError(t, cm.Run(context.Background()))

	assert.Equal(t, strings.Join([]string{
		"bitmap: 00 0000000000 0000000000 0010100010",
		"population: 3",
		"slot 01 -> 0",
		"slot 05 -> 1",
		"slot 07 -> 2",
	}, "\n")+"\n", buf.String())
}

func TestBitmapCommand_Lookup(t *testing.T) {
	buf := &bytes.Buffer{}
	cm := NewBitmapCommand(logger.NopLogger, buf)
	cm.Indexes = []string{"5", "7", "1", "5"}
	cm.Lookup = []string{"6", "7"}

	require.NoError(t, cm.Run(context.Background()))

	assert.Contains(t, buf.String(), "population: 3\n")
	assert.Contains(t, buf.String(), "slot 06 -> NotFound\n")
	assert.Contains(t, buf.String(), "slot 07 -> 2\n")
}

func TestBitmapCommand_InvalidIndex(t *testing.T) {
	for _, arg := range []string{"32", "-1", "x", "256"} {
		cm := NewBitmapCommand(logger.NopLogger, &bytes.Buffer{})
		cm.Indexes = []string{arg}

		err := cm.Run(context.Background())
		require.Error(t, err, arg)
		assert.Equal(t, ErrInvalidIndex, errors.Cause(err), arg)
	}
}

func TestTableInsert(t *testing.T) {
	var t0 table
	t1, i1 := t0.insert(5, "five")
	t2, i2 := t1.insert(7, "seven")
	t3, i3 := t2.insert(1, "one")

	assert.Equal(t, bitmap.ArrayIndex(0), i1)
	assert.Equal(t, bitmap.ArrayIndex(1), i2)
	assert.Equal(t, bitmap.ArrayIndex(0), i3)
	assert.Equal(t, []string{"one", "five", "seven"}, t3.keys)

	// earlier versions are untouched
	assert.Equal(t, []string{"five", "seven"}, t2.keys)
	assert.Equal(t, 2, t2.nodeMap.Population())

	k, ok := t3.get(7)
	assert.True(t, ok)
	assert.Equal(t, "seven", k)

	_, ok = t3.get(6)
	assert.False(t, ok)
}

func TestPlaceCommand_Run(t *testing.T) {
	var keys = make([]string, 40)
	for i := range keys {
		keys[i] = fmt.Sprintf("key%02d", i)
	}

	buf := &bytes.Buffer{}
	cm := NewPlaceCommand(logger.NewLogfLogger(t), buf)
	cm.Keys = keys

	require.NoError(t, cm.Run(context.Background()))

	var alg = hashkey.XXH3()
	var b = bitmap.Empty()
	for _, k := range keys {
		b = b.Set(hashkey.Compute(alg, hashkey.StringKey(k)).Index(0))
	}

	var out = buf.String()
	assert.Contains(t, out, fmt.Sprintf("bitmap: %s\n", b))
	assert.Contains(t, out, fmt.Sprintf("population: %d\n", b.Population()))

	// 40 keys into 32 slots must collide at least 8 times
	assert.GreaterOrEqual(t, strings.Count(out, "collides with"), len(keys)-b.Population())
	assert.Equal(t, b.Population(), strings.Count(out, "now at"))

	var idx = hashkey.Compute(alg, hashkey.StringKey("key00")).Index(0)
	assert.Contains(t, out, fmt.Sprintf("key00\tslot %s\tinserted at 0\tnow at %s\n", idx, b.SparseIndex(idx)))
}
