package btree

import (
	"fmt"
	"strings"
)

/*
Btree only keeps the handle of its root node.
All nodes, the root included, are records in the tree's arena.
*/
type Btree struct {
	arena *arena
	root  Handle

	keys       int // number of distinct keys stored
	splits     int // node splits, root splits included
	rootSplits int // splits that grew the tree by one level
}

// NewBTree creates an empty tree whose root is a single empty leaf.
func NewBTree() *Btree {
	a := newArena()
	root := a.allocate(true)
	return &Btree{arena: a, root: root}
}

// Search returns the value stored under key.
// The boolean result is false if the key has never been inserted.
func (t *Btree) Search(key uint64) (uint64, bool) {
	for h := t.root; ; {
		n := t.arena.get(h)
		pos, found := n.search(key)
		if found {
			return n.values[pos], true
		}
		if n.isLeaf {
			return 0, false
		}
		next := n.children[pos]
		if next == nilHandle {
			panic(fmt.Sprintf("btree: node %d has no child at %d", h, pos))
		}
		h = next
	}
}

/*
Insert stores value under key. If the key is already present, its value is
overwritten in place and no record is allocated.

Insertion never walks back up the tree. A full root is split first, which is
the only way the tree grows in height; after that every full child is split
before the descent enters it, so the leaf that finally receives the key is
guaranteed to have room, and so is every ancestor that receives a median.
*/
func (t *Btree) Insert(key, value uint64) {
	if t.arena.get(t.root).isFull() {
		t.splitRoot()
	}
	t.insertNonFull(t.root, key, value)
}

/*
Create a new root node.
The existing root becomes the new root's only child and is split right away,
so the new root ends up with one key and two children.
*/
func (t *Btree) splitRoot() {
	oldRoot := t.root
	newRoot := t.arena.allocate(false)
	t.arena.get(newRoot).insertChildAt(0, oldRoot)
	t.root = newRoot
	t.rootSplits++
	tracer().Debugf("btree: root %d full, new root %d", oldRoot, newRoot)
	t.splitChild(newRoot, 0)
}

/*
splitChild splits the full child at position pos of parent. The right half
moves into a new record, and the median is promoted into parent at pos with the
new record as the child to its right. parent must not be full.
*/
func (t *Btree) splitChild(parent Handle, pos int) {
	childH := t.arena.get(parent).children[pos]
	if childH == nilHandle {
		panic(fmt.Sprintf("btree: node %d has no child at %d", parent, pos))
	}
	rightH := t.arena.allocate(t.arena.get(childH).isLeaf)

	// allocate may have moved the table; look everything up again.
	child, right := t.arena.getPair(childH, rightH)
	medianKey, medianValue := child.split(right)

	p := t.arena.get(parent)
	p.insertItemAt(pos, medianKey, medianValue)
	p.insertChildAt(pos+1, rightH)
	t.splits++
	tracer().Debugf("btree: split node %d at key %d into %d|%d", childH, medianKey, childH, rightH)
}

// insertNonFull descends from h, which must not be full, down to the leaf
// that receives key.
func (t *Btree) insertNonFull(h Handle, key, value uint64) {
	for {
		n := t.arena.get(h)
		pos, found := n.search(key)

		// The data item already exists, so just update its value.
		if found {
			n.setValue(pos, value)
			return
		}

		// A leaf reached this way always has room for the new item.
		if n.isLeaf {
			n.insertItemAt(pos, key, value)
			t.keys++
			return
		}

		childH := n.children[pos]
		if childH == nilHandle {
			panic(fmt.Sprintf("btree: node %d has no child at %d", h, pos))
		}

		// If the next node on the traversal path is already full, split it.
		if t.arena.get(childH).isFull() {
			t.splitChild(h, pos)
			n = t.arena.get(h)

			// We may need to change direction after promoting the median into n.
			switch median := n.keys[pos]; {
			case key < median:
				// still the left half, which kept the child's handle
			case key > median:
				pos++
			default:
				// The promoted median is the key we are inserting.
				n.setValue(pos, value)
				return
			}
			childH = n.children[pos]
		}
		h = childH
	}
}

// Len returns the number of distinct keys in the tree.
func (t *Btree) Len() int {
	return t.keys
}

// Height returns the number of levels of the tree. A tree consisting of a
// single leaf has height 1.
func (t *Btree) Height() int {
	height := 1
	for n := t.arena.get(t.root); !n.isLeaf; n = t.arena.get(n.children[0]) {
		height++
	}
	return height
}

// NumNodes returns the number of records in the arena.
func (t *Btree) NumNodes() int {
	return t.arena.len()
}

// Root returns the handle of the current root node.
func (t *Btree) Root() Handle {
	return t.root
}

func (t *Btree) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
