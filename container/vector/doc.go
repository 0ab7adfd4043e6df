// Package vector provides Vector, an owning dynamic array whose storage comes
// from a pluggable allocator.
//
// # Overview
//
// A Vector owns a single contiguous region of Cap() slots. The first Len()
// slots hold live elements; the rest are allocated but hold nothing. Every
// element is created and destroyed through the traits facade, so allocators
// that customise construction or destruction see every lifecycle event, and
// element types implementing the lifecycle hooks (Init, Clone, Finalize) have
// them run at the right time.
//
// # Construction
//
// Every constructor allocates exactly the requested capacity:
//
//	v := vector.New[int]()                       // Len 0, Cap 0, no allocation
//	v, err := vector.NewFilled(8, "x")           // 8 copies of "x"
//	v, err := vector.NewSized[conn](4)           // 4 default-constructed elements
//	v, err := vector.Of([]int{1, 2, 3})          // initializer list
//	v, err := vector.FromRange(first, last)      // copy of [first, last)
//	c, err := v.Clone()                          // Cap == v.Len()
//	m := v.Move()                                // adopts v's storage, v becomes empty
//
// If any allocation or element construction fails part-way, the elements
// already built are destroyed, the region is released, and the error is
// returned. No partially built Vector escapes.
//
// # Teardown
//
// Go has no destructors, so owners call Release when done. Release destroys
// the live elements in index order and then frees the region exactly once.
// Calling it again is a no-op, and a released Vector is empty and reusable.
//
// # Growth
//
// PushBack, EmplaceBack and Resize grow the region by doubling its capacity.
// Reserve and ShrinkToFit reallocate to an exact capacity. Relocation moves
// elements; it never copies them.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use.
package vector
