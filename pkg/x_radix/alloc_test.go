package x_radix_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rskv-p/rtree/pkg/x_radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyAllocator fails the n-th Acquire or Resize after it is armed and
// forwards everything else to a LimitAllocator.
type flakyAllocator struct {
	*x_radix.LimitAllocator
	failAt int
	calls  int
}

var errFlaky = errors.New("flaky")

func (a *flakyAllocator) arm(n int) { a.failAt, a.calls = n, 0 }

func (a *flakyAllocator) tick() bool {
	if a.failAt == 0 {
		return false
	}
	a.calls++
	return a.calls == a.failAt
}

func (a *flakyAllocator) Acquire(size int) error {
	if a.tick() {
		return errFlaky
	}
	return a.LimitAllocator.Acquire(size)
}

func (a *flakyAllocator) Resize(oldSize, newSize int) error {
	if a.tick() {
		return errFlaky
	}
	return a.LimitAllocator.Resize(oldSize, newSize)
}

func dump(tr *x_radix.Tree[string]) string {
	var buf bytes.Buffer
	tr.Dump(&buf)
	return buf.String()
}

//---------------------
// LimitAllocator
//---------------------

func TestLimitAllocator_Accounting(t *testing.T) {
	a := x_radix.NewLimitAllocator(100)
	require.NoError(t, a.Acquire(60))
	require.ErrorIs(t, a.Acquire(41), x_radix.ErrAllocation)
	require.NoError(t, a.Resize(60, 100))
	assert.Equal(t, 100, a.InUse())
	require.NoError(t, a.Resize(100, 10))
	assert.Equal(t, 10, a.InUse())
	a.Release(50)
	assert.Equal(t, 0, a.InUse())
	assert.Equal(t, 100, a.Peak())
	assert.Equal(t, 100, a.Limit())
}

func TestLimitAllocator_FreeReturnsEverything(t *testing.T) {
	a := x_radix.NewLimitAllocator(1 << 20)
	tr, err := x_radix.New[string](38, nil, x_radix.WithAllocator(a))
	require.NoError(t, err)
	rootOnly := a.InUse()
	require.Positive(t, rootOnly)

	for i := 0; i < 300; i++ {
		k := fmt.Sprintf("key-%03d-%d", i%37, i)
		require.NoError(t, tr.Set([]byte(k), k))
	}
	require.NoError(t, tr.Remove([]byte("key-001-1")))
	assert.Greater(t, a.InUse(), rootOnly)

	tr.Free()
	assert.Equal(t, 0, a.InUse())
}

func TestLimitAllocator_BudgetExhaustion(t *testing.T) {
	a := x_radix.NewLimitAllocator(1024)
	tr, err := x_radix.New[string](38, nil, x_radix.WithAllocator(a))
	require.NoError(t, err)

	var stored []string
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("k%02d", i)
		if err := tr.Set([]byte(k), k); err != nil {
			require.ErrorIs(t, err, x_radix.ErrAllocation)
			break
		}
		stored = append(stored, k)
	}
	require.NotEmpty(t, stored)
	require.Less(t, len(stored), 100)
	assert.LessOrEqual(t, a.InUse(), 1024)

	for _, k := range stored {
		v, err := tr.Get([]byte(k))
		require.NoError(t, err)
		assert.Equal(t, k, v)
	}
	assert.Equal(t, len(stored), tr.Len())
}

//---------------------
// All-or-nothing mutation
//---------------------

func TestSet_AllocationFailureLeavesTreeUnchanged(t *testing.T) {
	// Set("ABD") on {"ABC"} splits "ABC" (three acquires), allocates the new
	// leaf (three more) and grows the one-slot array of "AB" (a resize).
	// Fail each one in turn.
	for step := 1; step <= 7; step++ {
		t.Run(fmt.Sprintf("acquire-%d", step), func(t *testing.T) {
			a := &flakyAllocator{LimitAllocator: x_radix.NewLimitAllocator(1 << 20)}
			tr, err := x_radix.New[string](38, nil, x_radix.WithAllocator(a))
			require.NoError(t, err)
			require.NoError(t, tr.Set([]byte("ABC"), "abc"))

			before, inUse := dump(tr), a.InUse()
			a.arm(step)
			err = tr.Set([]byte("ABD"), "abd")
			require.ErrorIs(t, err, x_radix.ErrAllocation)
			require.ErrorContains(t, err, "flaky")

			assert.Equal(t, before, dump(tr))
			assert.Equal(t, inUse, a.InUse())
			v, err := tr.Get([]byte("ABC"))
			require.NoError(t, err)
			assert.Equal(t, "abc", v)

			a.arm(0)
			require.NoError(t, tr.Set([]byte("ABD"), "abd"))
			tr.Free()
			assert.Zero(t, a.InUse())
		})
	}
}

func TestSet_GrowFailureLeavesTreeUnchanged(t *testing.T) {
	a := &flakyAllocator{LimitAllocator: x_radix.NewLimitAllocator(1 << 20)}
	tr, err := x_radix.New[string](38, nil, x_radix.WithAllocator(a))
	require.NoError(t, err)
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, tr.Set([]byte(k), k))
	}
	before, inUse := dump(tr), a.InUse()

	// leaf: node, label, children = 3 acquires; the 4th call grows the root.
	a.arm(4)
	require.ErrorIs(t, tr.Set([]byte("g"), "g"), x_radix.ErrAllocation)
	assert.Equal(t, before, dump(tr))
	assert.Equal(t, inUse, a.InUse())
	assert.Equal(t, 6, tr.Len())
}
