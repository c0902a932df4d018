package btree

const (
	order    = 6            // minimum degree of the tree
	capacity = 2*order - 1  // 11 keys per node
	minKeys  = order - 1    // 5 keys per non-root node
	maxChild = capacity + 1 // 12 child handles per internal node
	mid      = capacity / 2 // index of the median key of a full node
)

/*
A node is one page of the tree, stored by value inside the arena.
Keys and values are parallel arrays; only the prefix [0, numItems) is occupied.
Children are handles into the same arena. For an internal node with n keys,
children[0..n] are set and every other slot holds nilHandle.
*/
type node struct {
	// fixed-size arrays keep every record the same size inside the arena.
	keys     [capacity]uint64
	values   [capacity]uint64
	children [maxChild]Handle
	numItems int
	isLeaf   bool

	// version is bumped on every mutation of the record. Nothing reads it yet;
	// it is the hook for validated optimistic reads.
	version uint64
}

func newNode(isLeaf bool) node {
	n := node{isLeaf: isLeaf}
	for i := range n.children {
		n.children[i] = nilHandle
	}
	return n
}

func (n *node) isFull() bool {
	return n.numItems >= capacity
}

/*
If key is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
The insertion index coincides with the position of the child handle that covers the key,
so the same result drives both leaf placement and the choice of child during descent.
*/
func (n *node) search(key uint64) (int, bool) {
	low, high := 0, n.numItems
	for low < high {
		m := int(uint(low+high) >> 1)
		switch k := n.keys[m]; {
		case key > k:
			low = m + 1
		case key < k:
			high = m
		default:
			return m, true
		}
	}
	return low, false
}

// insertItemAt inserts a key/value pair at pos, shifting the tail one slot right.
func (n *node) insertItemAt(pos int, key, value uint64) {
	if n.isFull() {
		panic("btree: insert into full node")
	}
	if pos < n.numItems {
		copy(n.keys[pos+1:n.numItems+1], n.keys[pos:n.numItems])
		copy(n.values[pos+1:n.numItems+1], n.values[pos:n.numItems])
	}
	n.keys[pos] = key
	n.values[pos] = value
	n.numItems++
	n.version++
}

// insertChildAt inserts a child handle at pos. numItems must already count the
// separator key that goes with the new child.
func (n *node) insertChildAt(pos int, child Handle) {
	last := n.numItems // index of the last occupied child slot after insertion
	if last >= maxChild {
		panic("btree: child slots exhausted")
	}
	copy(n.children[pos+1:last+1], n.children[pos:last])
	n.children[pos] = child
	n.version++
}

func (n *node) setValue(pos int, value uint64) {
	n.values[pos] = value
	n.version++
}

/*
split moves the upper half of a full node n into right, which must be a freshly
allocated, empty record of the same kind. n keeps keys [0, mid), the key at mid
is returned as the median to be promoted into the parent, and right receives
keys [mid+1, capacity). For internal nodes, n keeps children [0, mid] and right
receives children [mid+1, capacity]; the moved slots in n are cleared.
*/
func (n *node) split(right *node) (uint64, uint64) {
	if n.numItems != capacity {
		panic("btree: split of non-full node")
	}
	if right.numItems != 0 || right.isLeaf != n.isLeaf {
		panic("btree: split target is not an empty sibling")
	}
	medianKey, medianValue := n.keys[mid], n.values[mid]

	moved := n.numItems - (mid + 1)
	copy(right.keys[:], n.keys[mid+1:n.numItems])
	copy(right.values[:], n.values[mid+1:n.numItems])
	right.numItems = moved

	if !n.isLeaf {
		copy(right.children[:], n.children[mid+1:n.numItems+1])
		for i := mid + 1; i <= n.numItems; i++ {
			n.children[i] = nilHandle
		}
	}

	// Remove data items from the current node that were moved to the new node.
	for i := mid; i < n.numItems; i++ {
		n.keys[i] = 0
		n.values[i] = 0
	}
	n.numItems = mid
	n.version++
	right.version++

	return medianKey, medianValue
}
