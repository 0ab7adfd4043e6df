package alloc

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/joshuapare/goosekit/internal/buf"
)

// Allocator provides raw storage for elements of type T.
//
// Implementations:
//   - Heap: default allocator backed by the Go heap
//   - Limited: heap storage charged against a Budget
//   - Mmap: off-heap anonymous mappings for pointer-free types
//   - Instrumented: metrics decorator around any Allocator
type Allocator[T any] interface {
	// Allocate returns storage for at least n elements. The slots hold no live
	// elements until a container constructs into them. Allocate(0) returns a
	// nil region and performs no allocation.
	Allocate(n int) ([]T, error)

	// Deallocate releases a region previously returned by Allocate(n) on this
	// allocator. The region must not be used or deallocated again.
	Deallocate(p []T, n int)
}

// DefaultConstructor customises default construction of elements.
type DefaultConstructor[T any] interface {
	ConstructDefault(p *T) error
}

// CopyConstructor customises construction of an element from a copy of v.
type CopyConstructor[T any] interface {
	ConstructCopy(p *T, v T) error
}

// MoveConstructor customises construction of an element by taking the value
// at src. On success src no longer owns a value.
type MoveConstructor[T any] interface {
	ConstructMove(p *T, src *T) error
}

// InPlaceConstructor customises construction from an initializer that stands in
// for arbitrary constructor arguments.
type InPlaceConstructor[T any] interface {
	ConstructWith(p *T, init func(*T)) error
}

// Destroyer customises destruction of elements.
type Destroyer[T any] interface {
	Destroy(p *T)
}

// LayoutProvider overrides the storage layout the traits facade assumes for an
// allocator. Zero fields keep their defaults.
type LayoutProvider interface {
	Layout() Layout
}

// Equaler reports whether storage from this allocator may be released through
// other, and vice versa.
type Equaler interface {
	Equal(other any) bool
}

// Rebinder produces an allocator of the same kind for element type U.
type Rebinder[U any] interface {
	Rebind() Allocator[U]
}

// Layout describes the associated types of an allocator: how large and how
// aligned one element slot is, and how many slots a single region may hold.
type Layout struct {
	Size     uintptr
	Align    uintptr
	MaxCount int
}

// LayoutOf returns the default layout for element type T.
func LayoutOf[T any]() Layout {
	var zero T
	l := Layout{
		Size:     unsafe.Sizeof(zero),
		Align:    unsafe.Alignof(zero),
		MaxCount: math.MaxInt,
	}
	if l.Size > 0 {
		l.MaxCount = math.MaxInt / int(l.Size)
	}
	return l
}

// Merge returns l with every non-zero field of override applied.
func (l Layout) Merge(override Layout) Layout {
	if override.Size != 0 {
		l.Size = override.Size
	}
	if override.Align != 0 {
		l.Align = override.Align
	}
	if override.MaxCount != 0 {
		l.MaxCount = override.MaxCount
	}
	return l
}

// Equal reports whether two allocators are interchangeable. Allocators that
// implement Equaler decide for themselves; otherwise allocators of the same
// dynamic type are equal, which holds for every stateless allocator.
func Equal(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.Equal(a)
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Rebind returns an allocator of the same kind as a for element type U. When a
// does not know how to rebind itself the default Heap allocator is returned.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	switch src := any(a).(type) {
	case Rebinder[U]:
		return src.Rebind()
	case budgeted:
		return NewLimited[U](src.Budget())
	case *Mmap[T]:
		if m, err := NewMmap[U](); err == nil {
			return m
		}
	}
	return Heap[U]{}
}

// budgeted is implemented by allocators that charge a Budget.
type budgeted interface {
	Budget() *Budget
}

// regionBytes returns the byte size of a region of n slots of T.
func regionBytes[T any](n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	total, err := buf.RegionBytes(n, int(LayoutOf[T]().Size))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	return total, nil
}
