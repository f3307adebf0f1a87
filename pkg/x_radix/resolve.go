package x_radix

//---------------------
// Path Resolver
//---------------------

type mode uint8

const (
	modeGet    mode = iota // exact path, no mutation
	modeSet                // extend the path, splitting edges as needed
	modePrefix             // deepest node the key is a literal prefix of
)

func (m mode) String() string {
	switch m {
	case modeGet:
		return "get"
	case modeSet:
		return "set"
	case modePrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// resolve walks the tree along key. The returned node may be a placeholder;
// callers decide what a valueless match means. key must be non-empty.
//
// In modeSet a failure after an edge was split folds the split back, leaving
// the tree as it was before the call.
func (t *Tree[V]) resolve(m mode, key []byte) (*node[V], error) {
	var split *node[V]
	n, rest := t.root, key
	for {
		if len(n.children) == 0 {
			if m != modeSet {
				return nil, ErrNotFound
			}
			return t.addLeaf(n, 0, rest, split)
		}

		i, found := n.search(rest[0])
		if !found {
			if m != modeSet {
				return nil, ErrNotFound
			}
			return t.addLeaf(n, i, rest, split)
		}

		child := n.children[i]
		shared := commonPrefixLen(rest, child.label)
		if shared < len(child.label) {
			switch m {
			case modePrefix:
				if shared == len(rest) {
					return child, nil
				}
				return nil, ErrNotFound
			case modeGet:
				return nil, ErrNotFound
			}
			if _, err := t.splitEdge(child, shared); err != nil {
				return nil, err
			}
			split = child
		}

		if shared == len(rest) {
			return child, nil
		}
		n, rest = child, rest[shared:]
	}
}

// addLeaf creates a node for rest and links it under n at position i.
func (t *Tree[V]) addLeaf(n *node[V], i int, rest []byte, split *node[V]) (*node[V], error) {
	leaf, err := t.newNode(rest, 0)
	if err == nil {
		if err = t.insertChild(n, i, leaf); err != nil {
			t.free(leaf)
		}
	}
	if err != nil {
		if split != nil {
			t.joinEdge(split)
		}
		return nil, err
	}
	t.log.Debug().Bytes("parent", n.label).Bytes("edge", leaf.label).Int("pos", i).Msg("new leaf")
	return leaf, nil
}
