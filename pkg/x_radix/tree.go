// file: rtree/pkg/x_radix/tree.go
package x_radix

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

//---------------------
// Tree
//---------------------

// Tree maps byte-string keys to values of type V.
type Tree[V any] struct {
	root     *node[V]
	size     int
	alphabet int
	maxKey   int
	alloc    Allocator
	destroy  Destroyer[V]
	log      zerolog.Logger
}

// New creates a tree whose nodes hold at most alphabetSize children. The size
// is clamped to MaxAlphabet; below 1 it is rejected. destroy may be nil, in
// which case the caller keeps ownership of every value.
func New[V any](alphabetSize int, destroy Destroyer[V], opts ...Option) (*Tree[V], error) {
	if alphabetSize < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "alphabet size %d", alphabetSize)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[V]{
		alphabet: min(alphabetSize, MaxAlphabet),
		maxKey:   o.MaxKeyLen,
		alloc:    o.Allocator,
		destroy:  destroy,
		log:      o.Logger,
	}
	root, err := t.newNode(nil, 0)
	if err != nil {
		return nil, errors.Wrap(err, "allocate root")
	}
	t.root = root
	return t, nil
}

// Len returns the number of stored values.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// AlphabetSize returns the fan-out ceiling of every node.
func (t *Tree[V]) AlphabetSize() int { return t.alphabet }

// MaxKeyLen returns the key bound; longer keys are truncated.
func (t *Tree[V]) MaxKeyLen() int { return t.maxKey }

// Get returns the value stored at key. A placeholder match is not found.
func (t *Tree[V]) Get(key []byte) (V, error) {
	var zero V
	key, err := t.checkKey(key)
	if err != nil {
		return zero, err
	}
	n, err := t.resolve(modeGet, key)
	if err != nil {
		return zero, errors.Wrapf(err, "%s %q", modeGet, key)
	}
	if !n.hasValue {
		return zero, errors.Wrapf(ErrNotFound, "%s %q", modeGet, key)
	}
	return n.value, nil
}

// Set stores value at key, replacing (and destroying) any previous value.
func (t *Tree[V]) Set(key []byte, value V) error {
	n, err := t.locate(key, value)
	if err != nil {
		return err
	}
	t.store(n, value)
	return nil
}

// SetIfAbsent stores value at key unless a value is already there. It returns
// the value stored at key after the call.
func (t *Tree[V]) SetIfAbsent(key []byte, value V) (V, error) {
	n, err := t.locate(key, value)
	if err != nil {
		var zero V
		return zero, err
	}
	if !n.hasValue {
		t.store(n, value)
	}
	return n.value, nil
}

// Remove clears the value at key. The node stays in the tree.
func (t *Tree[V]) Remove(key []byte) error {
	key, err := t.checkKey(key)
	if err != nil {
		return err
	}
	n, err := t.resolve(modeGet, key)
	if err == nil && !n.hasValue {
		err = ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "remove %q", key)
	}
	t.clear(n)
	return nil
}

// Prefix returns an iterator over every value whose key starts with prefix.
// An empty prefix scopes the whole tree.
func (t *Tree[V]) Prefix(prefix []byte) (*Iterator[V], error) {
	if t == nil || t.root == nil {
		return nil, ErrFreed
	}
	if len(prefix) == 0 {
		return &Iterator[V]{tree: t, scope: t.root}, nil
	}
	prefix = prefix[:min(len(prefix), t.maxKey)]
	n, err := t.resolve(modePrefix, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", modePrefix, prefix)
	}
	return &Iterator[V]{tree: t, scope: n}, nil
}

// Free releases every node, destroying all values. The tree is unusable
// afterwards and every live iterator is invalid.
func (t *Tree[V]) Free() {
	if t == nil || t.root == nil {
		return
	}
	t.free(t.root)
	t.root, t.size = nil, 0
}

//---------------------
// Internal
//---------------------

func (t *Tree[V]) checkKey(key []byte) ([]byte, error) {
	if t == nil || t.root == nil {
		return nil, ErrFreed
	}
	if len(key) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty key")
	}
	return key[:min(len(key), t.maxKey)], nil
}

// locate validates a Set request and returns the node for key, created if
// missing.
func (t *Tree[V]) locate(key []byte, value V) (*node[V], error) {
	key, err := t.checkKey(key)
	if err != nil {
		return nil, err
	}
	if isAbsent(value) {
		return nil, errors.Wrapf(ErrInvalidArgument, "nil value for %q", key)
	}
	n, err := t.resolve(modeSet, key)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", modeSet, key)
	}
	return n, nil
}
