package x_radix

//---------------------
// Node Store
//---------------------

// node is one edge of the tree. It owns its label and its children; parent is
// a back-reference used only for upward iteration.
type node[V any] struct {
	label    []byte
	value    V
	hasValue bool
	children []*node[V] // sorted by label[0], cap is the allocated fan-out
	parent   *node[V]
}

// newNode allocates a valueless node holding a copy of label with room for
// capacity children. Nothing stays acquired when it fails.
func (t *Tree[V]) newNode(label []byte, capacity int) (*node[V], error) {
	if capacity < 1 || capacity > t.alphabet {
		capacity = min(nodeInitSize, t.alphabet)
	}
	if err := t.acquire(nodeSize); err != nil {
		return nil, err
	}
	if err := t.acquire(len(label)); err != nil {
		t.release(nodeSize)
		return nil, err
	}
	if err := t.acquire(capacity * ptrSize); err != nil {
		t.release(nodeSize + len(label))
		return nil, err
	}
	return &node[V]{
		label:    copyBytes(label),
		children: make([]*node[V], 0, capacity),
	}, nil
}

// free tears down the subtree rooted at n, children first, then the value,
// the label, the child array and finally the node itself.
func (t *Tree[V]) free(n *node[V]) {
	for _, c := range n.children {
		t.free(c)
	}
	if n.hasValue {
		t.discard(n.value)
	}
	var zero V
	n.value, n.hasValue = zero, false
	t.release(cap(n.label))
	t.release(cap(n.children) * ptrSize)
	t.release(nodeSize)
	n.label, n.children, n.parent = nil, nil, nil
}

// discard hands a value to the destroyer, if any.
func (t *Tree[V]) discard(v V) {
	if t.destroy != nil {
		t.destroy(v)
	}
}

// store puts v into n, destroying a replaced value.
func (t *Tree[V]) store(n *node[V], v V) {
	if n.hasValue {
		t.discard(n.value)
	} else {
		t.size++
	}
	n.value, n.hasValue = v, true
}

// clear drops the value of n, destroying it.
func (t *Tree[V]) clear(n *node[V]) {
	if !n.hasValue {
		return
	}
	t.discard(n.value)
	var zero V
	n.value, n.hasValue = zero, false
	t.size--
}
