package btree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

/*
Visualizer renders the shape of a tree depth-first, one node per line:
the node's handle, whether it is a leaf or an internal node, and its keys.
Children are indented below their parent. The output is meant for humans
and is not a stable format.
*/
type Visualizer struct {
	Tree *Btree
	// Color enables terminal colors. fatih/color still switches them off
	// when stdout is not a terminal.
	Color bool
}

// Visualize returns the rendering as a string.
func (v *Visualizer) Visualize() string {
	var sb strings.Builder
	v.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the rendering to w.
func (v *Visualizer) WriteTo(w io.Writer) (int64, error) {
	p := v.palette()
	cw := &countingWriter{w: w}
	v.visit(cw, p, v.Tree.root, 0)
	return cw.n, cw.err
}

// Dump writes the shape of the tree to w without colors.
func (t *Btree) Dump(w io.Writer) {
	v := &Visualizer{Tree: t}
	v.WriteTo(w)
}

type palette struct {
	handle, leaf, inner, key *color.Color
}

func (v *Visualizer) palette() palette {
	p := palette{
		handle: color.New(color.FgCyan),
		leaf:   color.New(color.FgGreen),
		inner:  color.New(color.FgYellow, color.Bold),
		key:    color.New(color.FgWhite),
	}
	if !v.Color {
		for _, c := range []*color.Color{p.handle, p.leaf, p.inner, p.key} {
			c.DisableColor()
		}
	}
	return p
}

func (v *Visualizer) visit(w io.Writer, p palette, h Handle, depth int) {
	n := v.Tree.arena.get(h)
	kind := p.inner.Sprint("internal")
	if n.isLeaf {
		kind = p.leaf.Sprint("leaf")
	}
	keys := make([]string, n.numItems)
	for i := 0; i < n.numItems; i++ {
		keys[i] = p.key.Sprint(n.keys[i])
	}
	fmt.Fprintf(w, "%s%s %s: %s\n",
		strings.Repeat("  ", depth),
		p.handle.Sprintf("[%d]", h),
		kind,
		strings.Join(keys, " "))
	if n.isLeaf {
		return
	}
	for i := 0; i <= n.numItems; i++ {
		v.visit(w, p, n.children[i], depth+1)
	}
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
