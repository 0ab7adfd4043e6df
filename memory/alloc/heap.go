package alloc

// Heap is the default allocator. It keeps no state, so any two Heap values
// are interchangeable and storage from one may be released through another.
type Heap[T any] struct{}

// NewHeap returns the default allocator for T.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Allocate returns a region of n slots from the Go heap.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if _, err := regionBytes[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate zeroes the region so that anything it still references can be
// collected. The memory itself is reclaimed by the garbage collector.
func (Heap[T]) Deallocate(p []T, n int) {
	if n > len(p) {
		n = len(p)
	}
	clear(p[:n])
}
