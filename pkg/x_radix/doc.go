// Package x_radix implements a bounded radix tree (compressed trie) that maps
// raw byte-string keys to opaque values.
//
// Every node carries an edge label; concatenating the labels from the root to
// a node yields that node's key. Children are kept sorted by the first byte of
// their label, so a child lookup is a binary search and iteration is ordered.
// Nodes that carry no value are placeholders: split points created when two
// keys diverge in the middle of an edge.
//
// Usage:
//
//	t, err := x_radix.New[string](38, nil)
//	if err != nil {
//		return err
//	}
//	_ = t.Set([]byte("ABC"), "abc")
//	v, err := t.Get([]byte("ABC"))
//
//	it, err := t.Prefix([]byte("A"))
//	for it.Advance() {
//		fmt.Printf("%s = %v\n", it.Key(), it.Value())
//	}
//
// Keys are clamped to the tree's maximum key length (at most 128 bytes); longer
// input is truncated, never rejected. Remove is logical: the value is cleared
// and the node stays in place, so the shape of a tree never shrinks until Free.
//
// A Tree is not safe for concurrent use. An Iterator holds references into the
// node graph: any Set, SetIfAbsent, Remove or Free invalidates live iterators.
package x_radix
