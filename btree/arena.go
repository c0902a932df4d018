package btree

import "math"

// Handle identifies a node record by its position in the arena.
type Handle uint32

// nilHandle marks an empty child slot.
const nilHandle Handle = math.MaxUint32

/*
arena is a single growable table of node records. Parent-to-child edges are
stored as handles into this table instead of pointers, so two records can be
mutated at the same time by looking both up, rather than by holding one while
recursing into the other.

Records are never freed. A handle returned by allocate stays valid for the
lifetime of the arena. A *node obtained from get or getPair is only valid until
the next allocate, which may move the backing array.
*/
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{nodes: make([]node, 0, 16)}
}

// allocate appends a cleared record and returns its handle.
func (a *arena) allocate(isLeaf bool) Handle {
	if uint64(len(a.nodes)) >= uint64(nilHandle) {
		panic("btree: arena exhausted")
	}
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, newNode(isLeaf))
	return h
}

func (a *arena) get(h Handle) *node {
	return &a.nodes[h]
}

/*
getPair returns mutable views of two distinct records. The table is partitioned
at the larger handle and one view is taken from each side, so the two pointers
never share storage. Asking for the same handle twice is a bug in the caller.
*/
func (a *arena) getPair(x, y Handle) (*node, *node) {
	if x == y {
		panic("btree: getPair called with aliasing handles")
	}
	if x < y {
		lower, upper := a.nodes[:y], a.nodes[y:]
		return &lower[x], &upper[0]
	}
	lower, upper := a.nodes[:x], a.nodes[x:]
	return &upper[0], &lower[y]
}

func (a *arena) len() int {
	return len(a.nodes)
}
