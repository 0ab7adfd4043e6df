package alloc

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/goosekit/internal/logger"
)

// Mmap keeps element storage outside the Go heap in anonymous private
// mappings, one mapping per region. The garbage collector does not scan that
// memory, so only element types without Go pointers are accepted.
type Mmap[T any] struct{}

// NewMmap returns an off-heap allocator for T, or ErrPointerElem when T holds
// pointers, strings, slices, maps, channels, functions or interfaces.
func NewMmap[T any]() (*Mmap[T], error) {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, t)
	}
	return &Mmap[T]{}, nil
}

// Allocate maps a fresh zeroed region of n slots.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	size, err := regionBytes[T](n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if size == 0 {
		// Zero-sized elements need no backing memory.
		return make([]T, n), nil
	}
	return mapRegion[T](n, size)
}

// Deallocate unmaps the region. Failures are logged; the region must not be
// used afterwards either way.
func (m *Mmap[T]) Deallocate(p []T, n int) {
	size, err := regionBytes[T](n)
	if err != nil || n == 0 || size == 0 || len(p) == 0 {
		return
	}
	if err := unmapRegion(p, size); err != nil {
		logger.L.Warn("alloc: unmap failed", "bytes", size, "error", err)
	}
}

// Equal reports whether other is also an Mmap allocator for T. Mappings are
// independent of the allocator value that created them.
func (m *Mmap[T]) Equal(other any) bool {
	_, ok := other.(*Mmap[T])
	return ok
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
