// Package seq provides cursors over contiguous storage and the lexicographic
// comparison containers expose to generic code.
package seq

import "cmp"

// Cursor is a position within a contiguous sequence. Two cursors over the
// same backing storage form a half-open range [first, last).
type Cursor[T any] struct {
	s []T
	i int
}

// At returns a cursor at index i of s. i may equal len(s) (the end position).
func At[T any](s []T, i int) Cursor[T] {
	return Cursor[T]{s: s, i: i}
}

// Index returns the cursor's offset from the start of its storage.
func (c Cursor[T]) Index() int { return c.i }

// Get returns the element under the cursor.
func (c Cursor[T]) Get() T { return c.s[c.i] }

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T { return &c.s[c.i] }

// Next returns the cursor one element forward.
func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{s: c.s, i: c.i + 1} }

// Prev returns the cursor one element back.
func (c Cursor[T]) Prev() Cursor[T] { return Cursor[T]{s: c.s, i: c.i - 1} }

// Add returns the cursor n elements away; n may be negative.
func (c Cursor[T]) Add(n int) Cursor[T] { return Cursor[T]{s: c.s, i: c.i + n} }

// Equal reports whether both cursors denote the same position in the same
// storage.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.i == o.i && sameBase(c.s, o.s)
}

// Distance returns the number of steps from c to o.
func (c Cursor[T]) Distance(o Cursor[T]) int { return o.i - c.i }

func sameBase[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

// SameRange reports whether first and last walk the same backing storage, so
// that the distance between them is meaningful.
func SameRange[T any](first, last Cursor[T]) bool {
	return sameBase(first.s, last.s)
}

// Distance returns the number of elements in [first, last).
func Distance[T any](first, last Cursor[T]) int {
	return first.Distance(last)
}

// View is a sequence that can be traversed from Begin to End.
type View[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// SliceView adapts a slice to View.
type SliceView[T any] []T

func (v SliceView[T]) Begin() Cursor[T] { return At([]T(v), 0) }
func (v SliceView[T]) End() Cursor[T]   { return At([]T(v), len(v)) }

// LexicographicCompareFunc compares a and b element by element using less and
// returns -1, 0 or +1. A proper prefix orders before the longer sequence.
func LexicographicCompareFunc[T any](a, b View[T], less func(x, y T) bool) int {
	i, iEnd := a.Begin(), a.End()
	j, jEnd := b.Begin(), b.End()
	for ; !i.Equal(iEnd) && !j.Equal(jEnd); i, j = i.Next(), j.Next() {
		x, y := i.Get(), j.Get()
		if less(x, y) {
			return -1
		}
		if less(y, x) {
			return 1
		}
	}
	switch {
	case i.Equal(iEnd) && !j.Equal(jEnd):
		return -1
	case !i.Equal(iEnd) && j.Equal(jEnd):
		return 1
	default:
		return 0
	}
}

// LexicographicCompare compares two views of ordered elements.
func LexicographicCompare[T cmp.Ordered](a, b View[T]) int {
	return LexicographicCompareFunc(a, b, cmp.Less[T])
}

// LexicographicLess reports whether a orders strictly before b.
func LexicographicLess[T cmp.Ordered](a, b View[T]) bool {
	return LexicographicCompare(a, b) < 0
}
