/*
Package btree implements an in-memory B-tree over uint64 keys and values.

Nodes are not linked by pointers. They live by value in a single growable
table (the arena) and refer to their children by integer handles. Insertion
is a single top-down pass: every full node on the search path is split before
the descent moves past it, so a split never has to be reported back to a
parent.

The tree has minimum degree 6: every node holds at most 11 keys, every node
but the root at least 5. There is no deletion; records are never freed.

A Btree is not safe for concurrent use. Concurrent calls to Search are fine
as long as no Insert runs at the same time; serializing writers against
readers is up to the caller.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'btree'.
func tracer() tracing.Trace {
	return tracing.Select("btree")
}
