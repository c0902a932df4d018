package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocateIsDense(t *testing.T) {
	a := newArena()
	for i := 0; i < 100; i++ {
		h := a.allocate(i%2 == 0)
		require.Equal(t, Handle(i), h)
	}
	assert.Equal(t, 100, a.len())
	assert.True(t, a.get(0).isLeaf)
	assert.False(t, a.get(1).isLeaf)
}

func TestArenaAllocateClearsRecord(t *testing.T) {
	a := newArena()
	n := a.get(a.allocate(false))
	assert.Zero(t, n.numItems)
	for i, ch := range n.children {
		assert.Equal(t, nilHandle, ch, "child slot %d", i)
	}
}

func TestArenaHandlesSurviveGrowth(t *testing.T) {
	a := newArena()
	first := a.allocate(true)
	a.get(first).insertItemAt(0, 7, 70)
	for i := 0; i < 1000; i++ {
		a.allocate(true)
	}
	n := a.get(first)
	require.Equal(t, 1, n.numItems)
	assert.Equal(t, uint64(7), n.keys[0])
	assert.Equal(t, uint64(70), n.values[0])
}

func TestArenaGetPairIsDisjoint(t *testing.T) {
	a := newArena()
	x := a.allocate(true)
	a.allocate(true)
	y := a.allocate(true)

	for _, pair := range [][2]Handle{{x, y}, {y, x}} {
		p, q := a.getPair(pair[0], pair[1])
		require.NotSame(t, p, q)
		assert.Same(t, a.get(pair[0]), p)
		assert.Same(t, a.get(pair[1]), q)
	}

	p, q := a.getPair(x, y)
	p.insertItemAt(0, 1, 10)
	q.insertItemAt(0, 2, 20)
	assert.Equal(t, uint64(1), a.get(x).keys[0])
	assert.Equal(t, uint64(2), a.get(y).keys[0])
}

func TestArenaGetPairAliasingPanics(t *testing.T) {
	a := newArena()
	h := a.allocate(true)
	assert.PanicsWithValue(t, "btree: getPair called with aliasing handles", func() {
		a.getPair(h, h)
	})
}

func TestArenaGetUnallocatedPanics(t *testing.T) {
	a := newArena()
	a.allocate(true)
	assert.Panics(t, func() { a.get(5) })
}
