package x_radix

//---------------------
// Full Traversal
//---------------------

// Map calls fn for every stored value in pre-order with sorted children, which
// is ascending key order. The key slice is only valid during the call.
func (t *Tree[V]) Map(fn func(key []byte, value V)) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	var buf [MaxKeyLen]byte
	t.walk(t.root, buf[:0], fn)
}

func (t *Tree[V]) walk(n *node[V], pre []byte, fn func(key []byte, value V)) {
	pre = append(pre, n.label...)
	if n.hasValue {
		fn(boundKey(pre, t.maxKey), n.value)
	}
	for _, c := range n.children {
		t.walk(c, pre, fn)
	}
}
