package vector

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/joshuapare/goosekit/container/seq"
	"github.com/joshuapare/goosekit/memory/lifecycle"
)

func (v *Vector[T]) check(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.size)
	}
	return nil
}

// At returns a copy of the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.elems[i], nil
}

// Ref returns a pointer to the element at index i. It performs no range
// check beyond Go's own bounds check on the region, so indexing a slot in
// [Len(), Cap()) yields a pointer to storage that holds no live element.
func (v *Vector[T]) Ref(i int) *T {
	return &v.elems[i]
}

// Set copy-assigns x into the live element at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.check(i); err != nil {
		return err
	}
	lifecycle.AssignCopy(&v.elems[i], x)
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.elems[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.elems[v.size-1], nil
}

// Data returns the live elements. The slice aliases the Vector's storage and
// is invalidated by any operation that reallocates or releases it. Its
// capacity is clipped so appending to it cannot reach unconstructed slots.
func (v *Vector[T]) Data() []T {
	return v.elems[:v.size:v.size]
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() seq.Cursor[T] { return seq.At(v.elems, 0) }

// End returns a cursor one past the last element.
func (v *Vector[T]) End() seq.Cursor[T] { return seq.At(v.elems, v.size) }

// All iterates over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, v.elems[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.size {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}

// Compare compares a and b lexicographically, returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return seq.LexicographicCompare[T](a, b)
}

// CompareFunc compares a and b lexicographically using less.
func CompareFunc[T any](a, b *Vector[T], less func(x, y T) bool) int {
	return seq.LexicographicCompareFunc[T](a, b, less)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}
