package x_radix

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

//---------------------
// Child Index
//---------------------

// search finds the child whose label starts with c, or the position where such
// a child would be inserted. Sibling first bytes are unique, so one byte
// decides.
func (n *node[V]) search(c byte) (int, bool) {
	return slices.BinarySearchFunc(n.children, c, func(child *node[V], c byte) int {
		return cmp.Compare(child.label[0], c)
	})
}

// indexOf returns the position of child among n's children, -1 if absent.
func (n *node[V]) indexOf(child *node[V]) int {
	if len(child.label) == 0 {
		return -1
	}
	if i, ok := n.search(child.label[0]); ok && n.children[i] == child {
		return i
	}
	return -1
}

// insertChild links child at sorted position i, growing the array first when
// it is full. The node is unchanged on failure.
func (t *Tree[V]) insertChild(n *node[V], i int, child *node[V]) error {
	if len(n.children) == cap(n.children) {
		if err := t.grow(n); err != nil {
			return err
		}
	}
	n.children = n.children[:len(n.children)+1]
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
	return nil
}

// grow doubles the child array of n, capped at the alphabet size.
func (t *Tree[V]) grow(n *node[V]) error {
	old := cap(n.children)
	if old >= t.alphabet {
		return errors.Wrapf(ErrCapacityExhausted, "fan-out %d reached alphabet size %d", old, t.alphabet)
	}
	size := min(max(2*old, 1), t.alphabet)
	if err := t.resize(old*ptrSize, size*ptrSize); err != nil {
		return err
	}
	grown := make([]*node[V], len(n.children), size)
	copy(grown, n.children)
	n.children = grown
	t.log.Debug().Bytes("edge", n.label).Int("from", old).Int("to", size).Msg("grow children")
	return nil
}
