package vector

import (
	"fmt"

	"github.com/joshuapare/goosekit/internal/buf"
)

// Reserve ensures the Vector can hold n elements without reallocating. If n
// exceeds Cap() the region is reallocated to exactly n slots.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.elems) {
		return nil
	}
	return v.relocate(n)
}

// ShrinkToFit reallocates the region so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.elems) == v.size {
		return nil
	}
	return v.relocate(v.size)
}

// relocate moves the live elements into a fresh region of capacity slots and
// releases the old region. The old slots are moved-from and are not
// destroyed. On failure the Vector is unchanged.
func (v *Vector[T]) relocate(capacity int) error {
	old, oldCap := v.elems, len(v.elems)
	v.elems = nil
	if err := v.adopt(old, v.tr, v.size, capacity); err != nil {
		v.elems = old
		return err
	}
	v.tr.Deallocate(old, oldCap)
	v.log.Debug("vector: relocated", "from", oldCap, "to", capacity, "len", v.size)
	return nil
}

// grow makes room for need elements, doubling the capacity as required.
func (v *Vector[T]) grow(need int) error {
	if need <= len(v.elems) {
		return nil
	}
	next := min(buf.GrowCap(len(v.elems), need), v.tr.MaxCount())
	return v.relocate(max(next, need))
}

// PushBack appends a copy of x, doubling the capacity when the Vector is full.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.grow(v.size + 1); err != nil {
		return err
	}
	if err := v.tr.ConstructCopy(&v.elems[v.size], x); err != nil {
		return fmt.Errorf("vector: construct element %d: %w", v.size, err)
	}
	v.size++
	return nil
}

// EmplaceBack appends an element constructed in place by init.
func (v *Vector[T]) EmplaceBack(init func(*T)) error {
	if err := v.grow(v.size + 1); err != nil {
		return err
	}
	if err := v.tr.ConstructWith(&v.elems[v.size], init); err != nil {
		return fmt.Errorf("vector: construct element %d: %w", v.size, err)
	}
	v.size++
	return nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	v.tr.Destroy(&v.elems[v.size])
	return nil
}

// Resize changes the number of live elements to n. New elements are
// default-constructed; surplus elements are destroyed in index order. If
// construction fails, the elements added by this call are destroyed and the
// length is left as it was. Capacity gained by growing is kept.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, n)
	}
	if n <= v.size {
		for i := n; i < v.size; i++ {
			v.tr.Destroy(&v.elems[i])
		}
		v.size = n
		return nil
	}
	if err := v.grow(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		if err := v.tr.ConstructDefault(&v.elems[i]); err != nil {
			v.rollback(v.elems, v.size, i, 0)
			v.log.Debug("vector: resize failed, rolled back", "index", i, "error", err)
			return fmt.Errorf("vector: construct element %d: %w", i, err)
		}
	}
	v.size = n
	return nil
}

// Clear destroys every element in index order and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.rollback(v.elems, 0, v.size, 0)
	v.size = 0
}

// Swap exchanges the contents and allocators of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}
