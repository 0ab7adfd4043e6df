package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not supply the requested storage.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadCount indicates a negative element count.
	ErrBadCount = errors.New("alloc: negative element count")

	// ErrTooLarge indicates the request exceeds the largest region the allocator can describe.
	ErrTooLarge = errors.New("alloc: request exceeds maximum element count")

	// ErrPointerElem indicates an element type holding Go pointers was given to an
	// allocator that keeps storage outside the Go heap.
	ErrPointerElem = errors.New("alloc: element type contains pointers")
)
