package x_radix

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to writer.
func (t *Tree[V]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "FREED")
		return
	}
	fmt.Fprintf(w, "-- ROOT entries=%d alphabet=%d %s\n", t.size, t.alphabet, fanout(t.root))
	for _, c := range t.root.children {
		t.dump(w, c, 1)
	}
}

// dump writes a single node (recursive).
func (t *Tree[V]) dump(w io.Writer, n *node[V], depth int) {
	if n.hasValue {
		fmt.Fprintf(w, "%s%q = %v %s\n", dumpPre(depth), n.label, n.value, fanout(n))
	} else {
		fmt.Fprintf(w, "%s%q = NULL %s\n", dumpPre(depth), n.label, fanout(n))
	}
	for _, c := range n.children {
		t.dump(w, c, depth+1)
	}
}

func fanout[V any](n *node[V]) string {
	return fmt.Sprintf("[%d/%d]", len(n.children), cap(n.children))
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	var b strings.Builder
	for i := 1; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
