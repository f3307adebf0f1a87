package x_radix

import (
	"iter"
)

//---------------------
// Iterator
//---------------------

// Iterator walks the value-bearing nodes of a subtree in ascending key order.
// It keeps no stack: it moves down through the first child and back up
// through parent links, re-locating itself among its siblings at each step.
//
// Mutating the tree while an iterator is live invalidates it.
type Iterator[V any] struct {
	tree   *Tree[V]
	scope  *node[V] // results never leave this subtree
	cursor *node[V] // nil before the first Advance
}

// Advance moves to the next value. It returns false when the scope is
// exhausted; the iterator then stays on the last value it reported.
func (it *Iterator[V]) Advance() bool {
	if it == nil || it.scope == nil {
		return false
	}
	from := it.cursor
	if from == nil {
		if it.scope.hasValue {
			it.cursor = it.scope
			return true
		}
		from = it.scope
	}
	if n := it.next(from); n != nil {
		it.cursor = n
		return true
	}
	return false
}

// next returns the first valued node after n in pre-order, inside the scope.
func (it *Iterator[V]) next(n *node[V]) *node[V] {
	for {
		if len(n.children) > 0 {
			n = n.children[0]
		} else if n = it.nextSibling(n); n == nil {
			return nil
		}
		if n.hasValue {
			return n
		}
	}
}

// nextSibling climbs from n until an ancestor has a sibling following the
// branch just left, and returns that sibling.
func (it *Iterator[V]) nextSibling(n *node[V]) *node[V] {
	for n != it.scope && n.parent != nil {
		p := n.parent
		if i := p.indexOf(n); i >= 0 && i+1 < len(p.children) {
			return p.children[i+1]
		}
		n = p
	}
	return nil
}

// Key returns the full key of the current value, or nil before the first
// successful Advance.
func (it *Iterator[V]) Key() []byte {
	if it == nil || it.cursor == nil {
		return nil
	}
	limit := MaxKeyLen
	if it.tree != nil {
		limit = it.tree.maxKey
	}
	var buf [MaxKeyLen]byte
	pos := limit
	// Filled back to front; once the buffer is full the root-side bytes
	// are dropped.
	for n := it.cursor; n.parent != nil && pos > 0; n = n.parent {
		l := n.label
		if len(l) > pos {
			l = l[len(l)-pos:]
		}
		pos -= len(l)
		copy(buf[pos:], l)
	}
	return append([]byte(nil), buf[pos:limit]...)
}

// Value returns the current value, the zero value before the first Advance.
func (it *Iterator[V]) Value() V {
	if it == nil || it.cursor == nil {
		var zero V
		return zero
	}
	return it.cursor.value
}

// All adapts the iterator to a range-over-func sequence.
func (it *Iterator[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for it.Advance() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
