package btree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpSingleLeaf(t *testing.T) {
	tree := NewBTree()
	tree.Insert(2, 20)
	tree.Insert(1, 10)
	assert.Equal(t, "[0] leaf: 1 2\n", tree.String())
}

func TestDumpTwoLevels(t *testing.T) {
	tree := NewBTree()
	for k := uint64(10); k <= 120; k += 10 {
		tree.Insert(k, k*10)
	}
	var sb strings.Builder
	tree.Dump(&sb)
	want := "[1] internal: 60\n" +
		"  [0] leaf: 10 20 30 40 50\n" +
		"  [2] leaf: 70 80 90 100 110 120\n"
	assert.Equal(t, want, sb.String())
}

func TestVisualizerWithoutColorMatchesDump(t *testing.T) {
	tree := NewBTree()
	for k := uint64(0); k < 200; k++ {
		tree.Insert(k, k)
	}
	v := &Visualizer{Tree: tree}
	out := v.Visualize()
	assert.Equal(t, tree.String(), out)
	// one line per record
	assert.Equal(t, tree.NumNodes(), strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "["))
}
