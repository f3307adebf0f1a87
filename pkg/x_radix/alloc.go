package x_radix

import (
	"math/bits"

	"github.com/pkg/errors"
)

//---------------------
// Allocator Strategy
//---------------------

// Allocator grants or refuses memory to the tree. Sizes are in bytes. The tree
// asks before it creates a node, an edge label or a child array, and gives the
// bytes back when the buffer is discarded.
type Allocator interface {
	Acquire(size int) error
	Release(size int)
}

// Resizer is implemented by allocators that can grow or shrink a buffer in
// place. Without it a resize is an Acquire of the new size followed by a
// Release of the old one.
type Resizer interface {
	Resize(oldSize, newSize int) error
}

// Destroyer is invoked exactly once per value the tree permanently discards:
// on Remove, on overwrite by Set and on Free.
type Destroyer[V any] func(V)

// Accounting units charged to the allocator.
const (
	ptrSize  = bits.UintSize / 8
	nodeSize = 8 * ptrSize // header: label, value, children, parent
)

//---------------------
// HeapAllocator
//---------------------

// HeapAllocator delegates to the Go heap and never refuses.
type HeapAllocator struct{}

func (HeapAllocator) Acquire(int) error     { return nil }
func (HeapAllocator) Release(int)           {}
func (HeapAllocator) Resize(int, int) error { return nil }

//---------------------
// LimitAllocator
//---------------------

// LimitAllocator enforces a byte budget.
type LimitAllocator struct {
	limit int
	inUse int
	peak  int
}

// NewLimitAllocator creates an allocator that refuses to exceed limit bytes.
func NewLimitAllocator(limit int) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

func (a *LimitAllocator) Acquire(size int) error {
	if a.inUse+size > a.limit {
		return errors.Wrapf(ErrAllocation, "acquire %d bytes with %d of %d in use", size, a.inUse, a.limit)
	}
	a.inUse += size
	a.peak = max(a.peak, a.inUse)
	return nil
}

func (a *LimitAllocator) Release(size int) {
	a.inUse = max(a.inUse-size, 0)
}

func (a *LimitAllocator) Resize(oldSize, newSize int) error {
	if newSize >= oldSize {
		return a.Acquire(newSize - oldSize)
	}
	a.Release(oldSize - newSize)
	return nil
}

// InUse returns the bytes currently granted.
func (a *LimitAllocator) InUse() int { return a.inUse }

// Peak returns the high-water mark of granted bytes.
func (a *LimitAllocator) Peak() int { return a.peak }

// Limit returns the configured budget.
func (a *LimitAllocator) Limit() int { return a.limit }

//---------------------
// Tree-side helpers
//---------------------

func (t *Tree[V]) acquire(size int) error {
	if size <= 0 {
		return nil
	}
	if err := t.alloc.Acquire(size); err != nil {
		if errors.Is(err, ErrAllocation) {
			return err
		}
		return errors.Wrapf(ErrAllocation, "acquire %d bytes: %v", size, err)
	}
	return nil
}

func (t *Tree[V]) release(size int) {
	if size > 0 {
		t.alloc.Release(size)
	}
}

func (t *Tree[V]) resize(oldSize, newSize int) error {
	if r, ok := t.alloc.(Resizer); ok {
		if err := r.Resize(oldSize, newSize); err != nil {
			if errors.Is(err, ErrAllocation) {
				return err
			}
			return errors.Wrapf(ErrAllocation, "resize %d to %d bytes: %v", oldSize, newSize, err)
		}
		return nil
	}
	if err := t.acquire(newSize); err != nil {
		return err
	}
	t.release(oldSize)
	return nil
}
