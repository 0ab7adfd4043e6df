package testutil

import (
	"errors"
	"fmt"

	"github.com/joshuapare/goosekit/memory/alloc"
)

// ErrInjected is returned by HookAllocator when a configured failure fires.
var ErrInjected = errors.New("testutil: injected failure")

// HookAllocator is a heap allocator customising every lifecycle operation.
// It counts calls and can be told to fail the Nth construction or allocation.
// Move construction is left to the default primitive.
type HookAllocator[T any] struct {
	alloc.Heap[T]

	// FailConstructAt makes the construction with this 1-based sequence
	// number fail. Zero disables it.
	FailConstructAt int
	// FailAllocateAt makes the allocation with this 1-based sequence number
	// fail. Zero disables it.
	FailAllocateAt int
	// OnCopy, when set, transforms values during copy construction.
	OnCopy func(T) T

	Allocations   int
	Deallocations int
	Attempts      int // construction calls, including failed ones
	Constructs    int // successful constructions
	Destroys      int
	Outstanding   int // regions allocated and not yet deallocated
}

func (h *HookAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	h.Allocations++
	if h.Allocations == h.FailAllocateAt {
		return nil, fmt.Errorf("%w: %w", alloc.ErrOutOfMemory, ErrInjected)
	}
	p, err := h.Heap.Allocate(n)
	if err == nil {
		h.Outstanding++
	}
	return p, err
}

func (h *HookAllocator[T]) Deallocate(p []T, n int) {
	h.Deallocations++
	h.Outstanding--
	h.Heap.Deallocate(p, n)
}

func (h *HookAllocator[T]) construct() error {
	h.Attempts++
	if h.Attempts == h.FailConstructAt {
		return ErrInjected
	}
	h.Constructs++
	return nil
}

func (h *HookAllocator[T]) ConstructDefault(p *T) error {
	if err := h.construct(); err != nil {
		return err
	}
	var zero T
	*p = zero
	return nil
}

func (h *HookAllocator[T]) ConstructCopy(p *T, v T) error {
	if err := h.construct(); err != nil {
		return err
	}
	if h.OnCopy != nil {
		v = h.OnCopy(v)
	}
	*p = v
	return nil
}

func (h *HookAllocator[T]) ConstructWith(p *T, init func(*T)) error {
	if err := h.construct(); err != nil {
		return err
	}
	var zero T
	*p = zero
	init(p)
	return nil
}

func (h *HookAllocator[T]) Destroy(p *T) {
	h.Destroys++
	var zero T
	*p = zero
}

// Live returns constructions minus destructions.
func (h *HookAllocator[T]) Live() int { return h.Constructs - h.Destroys }
