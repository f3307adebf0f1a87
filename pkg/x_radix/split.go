package x_radix

import (
	"github.com/pkg/errors"
)

//---------------------
// Edge Split
//---------------------

// splitEdge cuts the edge of n after at bytes. The returned child takes the
// label suffix, the value and the children of n (re-parented to it); n keeps
// the label prefix, loses its value and holds the child as its only entry.
// Every allocation happens before n is touched, so a failed split leaves n
// exactly as it was.
func (t *Tree[V]) splitEdge(n *node[V], at int) (*node[V], error) {
	if at <= 0 || at >= len(n.label) {
		return nil, errors.Wrapf(ErrInvalidArgument, "split at %d of edge %q", at, n.label)
	}
	suffix := n.label[at:]
	if err := t.acquire(nodeSize); err != nil {
		return nil, err
	}
	if err := t.acquire(len(suffix)); err != nil {
		t.release(nodeSize)
		return nil, err
	}
	if err := t.acquire(ptrSize); err != nil {
		t.release(nodeSize + len(suffix))
		return nil, err
	}

	child := &node[V]{
		label:    copyBytes(suffix),
		value:    n.value,
		hasValue: n.hasValue,
		children: n.children,
		parent:   n,
	}
	for _, c := range child.children {
		c.parent = child
	}

	// The label buffer of n keeps its size; only the visible edge shrinks.
	var zero V
	n.label = n.label[:at]
	n.value, n.hasValue = zero, false
	n.children = []*node[V]{child}

	t.log.Debug().Bytes("edge", n.label).Bytes("suffix", child.label).Msg("split edge")
	return child, nil
}

// joinEdge undoes splitEdge on n: its only child is folded back into it.
// The label bytes are still in the buffer of n, so nothing is acquired.
func (t *Tree[V]) joinEdge(n *node[V]) {
	if len(n.children) != 1 || n.hasValue {
		return
	}
	child := n.children[0]
	if cap(n.label)-len(n.label) < len(child.label) {
		return
	}
	n.label = n.label[:len(n.label)+len(child.label)]
	n.value, n.hasValue = child.value, child.hasValue
	t.release(cap(n.children) * ptrSize)
	n.children = child.children
	for _, c := range n.children {
		c.parent = n
	}
	t.release(cap(child.label))
	t.release(nodeSize)
	child.label, child.children, child.parent = nil, nil, nil
	t.log.Debug().Bytes("edge", n.label).Msg("join edge")
}
