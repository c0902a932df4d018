package btree

import (
	"errors"
	"fmt"
)

// ErrCorruptTree signals a violated structural invariant.
var ErrCorruptTree = errors.New("btree: corrupt tree")

/*
Check validates the structural invariants of the tree:

  - every node holds at most 11 keys, every non-root node at least 5,
  - keys inside a node are strictly increasing,
  - an internal node with n keys has exactly n+1 children and no other
    occupied child slots,
  - all keys below children[i] lie strictly between keys[i-1] and keys[i],
  - all leaves are at the same depth,
  - the key count and the arena size agree with the tree's counters.

Check is meant for tests and debugging. It does not modify the tree.
*/
func (t *Btree) Check() error {
	if t == nil || t.arena == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if int(t.root) >= t.arena.len() {
		return fmt.Errorf("%w: root handle %d outside arena of %d records",
			ErrCorruptTree, t.root, t.arena.len())
	}
	c := checker{t: t, seen: make(map[Handle]bool)}
	keys, _, err := c.checkNode(t.root, true, bound{}, bound{})
	if err != nil {
		return err
	}
	if keys != t.keys {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrCorruptTree, keys, t.keys)
	}
	if len(c.seen) != t.arena.len() {
		return fmt.Errorf("%w: %d of %d arena records reachable",
			ErrCorruptTree, len(c.seen), t.arena.len())
	}
	if want := 1 + t.splits + t.rootSplits; want != t.arena.len() {
		return fmt.Errorf("%w: arena holds %d records, splits account for %d",
			ErrCorruptTree, t.arena.len(), want)
	}
	return nil
}

// bound is an optional exclusive key bound; the zero value is unbounded.
type bound struct {
	key uint64
	set bool
}

type checker struct {
	t    *Btree
	seen map[Handle]bool
}

func (c *checker) checkNode(h Handle, isRoot bool, lo, hi bound) (keys int, height int, err error) {
	if int(h) >= c.t.arena.len() {
		return 0, 0, fmt.Errorf("%w: handle %d outside arena", ErrCorruptTree, h)
	}
	if c.seen[h] {
		return 0, 0, fmt.Errorf("%w: node %d reachable twice", ErrCorruptTree, h)
	}
	c.seen[h] = true
	n := c.t.arena.get(h)

	if n.numItems < 0 || n.numItems > capacity {
		return 0, 0, fmt.Errorf("%w: node %d holds %d keys, capacity is %d",
			ErrCorruptTree, h, n.numItems, capacity)
	}
	if !isRoot && n.numItems < minKeys {
		return 0, 0, fmt.Errorf("%w: node %d holds %d keys, minimum is %d",
			ErrCorruptTree, h, n.numItems, minKeys)
	}
	for i := 0; i < n.numItems; i++ {
		k := n.keys[i]
		if i > 0 && n.keys[i-1] >= k {
			return 0, 0, fmt.Errorf("%w: node %d keys not strictly increasing at %d",
				ErrCorruptTree, h, i)
		}
		if (lo.set && k <= lo.key) || (hi.set && k >= hi.key) {
			return 0, 0, fmt.Errorf("%w: node %d key %d outside its subtree bounds",
				ErrCorruptTree, h, k)
		}
	}

	if n.isLeaf {
		for i, ch := range n.children {
			if ch != nilHandle {
				return 0, 0, fmt.Errorf("%w: leaf %d has child %d at %d", ErrCorruptTree, h, ch, i)
			}
		}
		return n.numItems, 1, nil
	}

	if n.numItems == 0 {
		return 0, 0, fmt.Errorf("%w: internal node %d has no keys", ErrCorruptTree, h)
	}
	for i := n.numItems + 1; i < maxChild; i++ {
		if n.children[i] != nilHandle {
			return 0, 0, fmt.Errorf("%w: node %d has stale child at %d", ErrCorruptTree, h, i)
		}
	}
	keys = n.numItems
	childHeight := 0
	for i := 0; i <= n.numItems; i++ {
		ch := n.children[i]
		if ch == nilHandle {
			return 0, 0, fmt.Errorf("%w: node %d is missing child %d", ErrCorruptTree, h, i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = bound{key: n.keys[i-1], set: true}
		}
		if i < n.numItems {
			chi = bound{key: n.keys[i], set: true}
		}
		cKeys, cHeight, cErr := c.checkNode(ch, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		keys += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: node %d has subtrees of unequal height", ErrCorruptTree, h)
		}
	}
	return keys, childHeight + 1, nil
}
