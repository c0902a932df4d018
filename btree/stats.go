package btree

// Stats is a snapshot of the tree's shape and growth counters.
type Stats struct {
	Keys       int // distinct keys stored
	Nodes      int // records in the arena
	Splits     int // node splits, root splits included
	RootSplits int // splits of the root; each added one level
	Height     int // levels, 1 for a single leaf
}

// Stats returns the current counters. Since a split allocates exactly one
// record and a root split allocates one more for the new root,
// Nodes == 1 + Splits + RootSplits always holds.
func (t *Btree) Stats() Stats {
	return Stats{
		Keys:       t.keys,
		Nodes:      t.arena.len(),
		Splits:     t.splits,
		RootSplits: t.rootSplits,
		Height:     t.Height(),
	}
}
