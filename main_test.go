package main

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattiaspuhk/sound-btree/btree"
)

func TestDebugTracingReportsSplits(t *testing.T) {
	var buf bytes.Buffer
	trace := setupTracing("debug", &buf)
	defer tracing.SetTraceSelector(nil)
	require.Equal(t, tracing.LevelDebug, trace.GetTraceLevel())
	require.Equal(t, tracing.LevelDebug, tracing.Select("btree").GetTraceLevel())

	tree := btree.NewBTree()
	for k := uint64(10); k <= 120; k += 10 {
		tree.Insert(k, k)
	}
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "btree: root 0 full, new root 1")
	assert.Contains(t, out, "btree: split node 0 at key 60 into 0|2")
}

func TestInfoTracingHidesSplits(t *testing.T) {
	var buf bytes.Buffer
	setupTracing("info", &buf)
	defer tracing.SetTraceSelector(nil)

	tree := btree.NewBTree()
	for k := uint64(0); k < 100; k++ {
		tree.Insert(k, k)
	}
	assert.Empty(t, buf.String())
	assert.Equal(t, tracing.LevelInfo, tracing.Select("btree").GetTraceLevel())
}
