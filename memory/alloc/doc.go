// Package alloc provides the storage providers behind goosekit containers.
//
// # Overview
//
// An allocator hands out raw storage for a fixed element type and takes it back
// again. It never constructs or destroys elements; that is the job of the
// containers, which go through the traits facade so that allocators can
// customise element lifecycle when they want to.
//
// # Allocator Interface
//
// The required contract is two methods:
//
//   - Allocate(n): obtain storage for at least n elements
//   - Deallocate(p, n): release storage previously returned by Allocate(n)
//
// Deallocating the same region twice, or a region that came from a different
// allocator, is a caller error and is not detected.
//
// # Optional Capabilities
//
// Allocators may also implement any of the following. They are detected per
// (allocator type, element type) pair by the probe package; each one is looked
// up independently, so customising copy construction does not affect how
// default construction is performed.
//
//   - DefaultConstructor, CopyConstructor, MoveConstructor, InPlaceConstructor
//   - Destroyer
//   - LayoutProvider: overrides element size, alignment or maximum count
//   - Equaler: decides whether two allocators can free each other's storage
//   - Rebinder: produces the same kind of allocator for another element type
//
// # Implementations
//
// Heap: the default allocator
//
//   - Stateless; every Heap value is equal to every other
//   - Storage comes from the Go heap
//
// Limited: heap storage charged against a shared byte Budget
//
//   - Fails with ErrOutOfMemory once the budget would be exceeded
//   - Tracks bytes in use and the peak
//
// Mmap: off-heap anonymous mappings
//
//   - Pointer-free element types only (ErrPointerElem otherwise)
//   - Falls back to heap storage on platforms without anonymous mappings
//
// Instrumented: a decorator exporting prometheus counters and gauges
//
// # Usage Example
//
//	budget := alloc.NewBudget(1 << 20)
//	a := alloc.NewLimited[int64](budget)
//
//	region, err := a.Allocate(128)
//	if err != nil {
//	    return err // wraps alloc.ErrOutOfMemory when the budget is spent
//	}
//	defer a.Deallocate(region, 128)
//
// # Thread Safety
//
// Heap and Mmap are safe for concurrent use. A Budget may be shared between
// allocators used from different goroutines. Containers built on these
// allocators are not thread-safe.
package alloc
