package x_radix

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole tree and verifies the structural rules that
// must hold between operations.
func checkInvariants[V any](t *testing.T, tr *Tree[V]) {
	t.Helper()
	require.NotNil(t, tr.root)
	require.Nil(t, tr.root.parent)
	require.Empty(t, tr.root.label)

	var values int
	var walk func(n *node[V], depth int)
	walk = func(n *node[V], depth int) {
		if n.hasValue {
			values++
		}
		require.LessOrEqual(t, depth, tr.maxKey, "key longer than bound")
		require.LessOrEqual(t, cap(n.children), tr.alphabet, "fan-out above alphabet")
		for i, c := range n.children {
			require.NotEmpty(t, c.label, "empty edge below %q", n.label)
			require.Same(t, n, c.parent, "parent of %q", c.label)
			if i > 0 {
				require.Less(t, n.children[i-1].label[0], c.label[0], "siblings unsorted under %q", n.label)
			}
			walk(c, depth+len(c.label))
		}
	}
	walk(tr.root, 0)
	require.Equal(t, tr.size, values)
}

func newTestTree(t *testing.T, alphabet int, opts ...Option) *Tree[string] {
	t.Helper()
	tr, err := New[string](alphabet, nil, opts...)
	require.NoError(t, err)
	return tr
}

//---------------------
// Child Index
//---------------------

func TestSearch_FoundAndInsertionPoint(t *testing.T) {
	tr := newTestTree(t, 38)
	for _, k := range []string{"m", "c", "x", "a"} {
		require.NoError(t, tr.Set([]byte(k), k))
	}
	root := tr.root

	i, ok := root.search('c')
	require.True(t, ok)
	require.Equal(t, "c", string(root.children[i].label))

	i, ok = root.search('b')
	require.False(t, ok)
	require.Equal(t, 1, i)

	i, ok = root.search('z')
	require.False(t, ok)
	require.Equal(t, 4, i)

	require.Equal(t, 2, root.indexOf(root.children[2]))
	require.Equal(t, -1, root.indexOf(&node[string]{label: []byte("q")}))
}

func TestGrow_DoublesUpToAlphabet(t *testing.T) {
	tr := newTestTree(t, 10)
	require.Equal(t, 6, cap(tr.root.children))

	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		require.NoError(t, tr.Set([]byte(k), k))
	}
	require.Equal(t, 10, cap(tr.root.children))

	for _, k := range []string{"h", "i", "j"} {
		require.NoError(t, tr.Set([]byte(k), k))
	}
	require.ErrorIs(t, tr.Set([]byte("k"), "k"), ErrCapacityExhausted)
	require.Len(t, tr.root.children, 10)
	checkInvariants(t, tr)
}

//---------------------
// Edge Split
//---------------------

func TestSplitEdge_ReparentsSubtree(t *testing.T) {
	tr := newTestTree(t, 38)
	require.NoError(t, tr.Set([]byte("abcdE"), "E"))
	require.NoError(t, tr.Set([]byte("abcdF"), "F"))
	require.NoError(t, tr.Set([]byte("abcd"), "abcd"))

	n := tr.root.children[0]
	require.Equal(t, "abcd", string(n.label))
	require.Len(t, n.children, 2)
	grandchildren := append([]*node[string](nil), n.children...)

	child, err := tr.splitEdge(n, 2)
	require.NoError(t, err)

	require.Equal(t, "ab", string(n.label))
	require.False(t, n.hasValue)
	require.Len(t, n.children, 1)
	require.Same(t, child, n.children[0])
	require.Equal(t, 1, cap(n.children))

	require.Equal(t, "cd", string(child.label))
	require.True(t, child.hasValue)
	require.Equal(t, "abcd", child.value)
	require.Same(t, n, child.parent)
	for _, g := range grandchildren {
		require.Same(t, child, g.parent)
	}
	checkInvariants(t, tr)

	v, err := tr.Get([]byte("abcdF"))
	require.NoError(t, err)
	require.Equal(t, "F", v)
}

func TestSplitEdge_RejectsBadOffset(t *testing.T) {
	tr := newTestTree(t, 38)
	require.NoError(t, tr.Set([]byte("abc"), "abc"))
	n := tr.root.children[0]

	_, err := tr.splitEdge(n, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tr.splitEdge(n, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, "abc", string(n.label))
}

func TestSplitEdge_FailureLeavesNodeUntouched(t *testing.T) {
	limit := NewLimitAllocator(1 << 20)
	tr := newTestTree(t, 38, WithAllocator(limit))
	require.NoError(t, tr.Set([]byte("abcd"), "v"))
	n := tr.root.children[0]

	tr.alloc = NewLimitAllocator(0)
	_, err := tr.splitEdge(n, 2)
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, "abcd", string(n.label))
	require.True(t, n.hasValue)
	require.Empty(t, n.children)
}

func TestJoinEdge_RestoresSplit(t *testing.T) {
	limit := NewLimitAllocator(1 << 20)
	tr := newTestTree(t, 38, WithAllocator(limit))
	require.NoError(t, tr.Set([]byte("abcdE"), "E"))
	require.NoError(t, tr.Set([]byte("abcd"), "abcd"))
	before := limit.InUse()

	n := tr.root.children[0]
	_, err := tr.splitEdge(n, 1)
	require.NoError(t, err)
	tr.joinEdge(n)

	require.Equal(t, "abcd", string(n.label))
	require.True(t, n.hasValue)
	require.Len(t, n.children, 1)
	require.Same(t, n, n.children[0].parent)
	require.Equal(t, before, limit.InUse())
	checkInvariants(t, tr)
}

//---------------------
// Bulk invariants
//---------------------

func TestInvariants_AfterMixedOperations(t *testing.T) {
	tr := newTestTree(t, 38)
	keys := []string{
		"romane", "romanus", "romulus", "rubens", "ruber", "rubicon", "rubicundus",
		"r", "rom", "rubicon", "a", "ab", "abc", "b",
	}
	for _, k := range keys {
		require.NoError(t, tr.Set([]byte(k), k))
		checkInvariants(t, tr)
	}
	for _, k := range []string{"rom", "rubicon", "a"} {
		require.NoError(t, tr.Remove([]byte(k)))
		checkInvariants(t, tr)
	}

	var buf bytes.Buffer
	tr.Dump(&buf)
	require.Contains(t, buf.String(), `"on" = NULL`)
}
