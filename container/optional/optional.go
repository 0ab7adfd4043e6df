// Package optional provides Optional, a holder for at most one value stored
// inline, with explicit construction and destruction.
//
// An Optional is either empty or engaged. It is engaged exactly when it holds
// a live value; the value's Finalize hook (see package lifecycle) runs once
// when an engaged Optional is cleared, and never for an empty one.
//
//	var o optional.Optional[int] // empty
//	o.Set(42)                   // engaged
//	v, err := o.Value()          // 42, nil
//	o.Clear()                    // empty again
package optional

import (
	"errors"
	"fmt"

	"github.com/joshuapare/goosekit/memory/lifecycle"
)

// ErrEmpty is returned when reading the value of an empty Optional.
var ErrEmpty = errors.New("optional: empty")

// Optional holds zero or one T. The zero value is empty and ready to use.
// An Optional must not be copied while engaged if T owns resources; use Clone
// or Assign instead.
type Optional[T any] struct {
	value   T
	engaged bool
}

// Some returns an engaged Optional holding a copy of v.
func Some[T any](v T) Optional[T] {
	var o Optional[T]
	lifecycle.ConstructCopy(&o.value, v)
	o.engaged = true
	return o
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional that takes the value at p, or an empty one when
// p is nil. *p no longer owns the value afterwards.
func FromPtr[T any](p *T) Optional[T] {
	var o Optional[T]
	if p != nil {
		lifecycle.ConstructMove(&o.value, p)
		o.engaged = true
	}
	return o
}

// Convert builds an Optional[T] from src by converting its value with fn.
// An empty src yields an empty result.
func Convert[U, T any](src *Optional[U], fn func(U) T) Optional[T] {
	if !src.engaged {
		return Optional[T]{}
	}
	return Some(fn(src.value))
}

// HasValue reports whether the Optional is engaged.
func (o *Optional[T]) HasValue() bool { return o.engaged }

// Value returns the held value, or ErrEmpty.
func (o *Optional[T]) Value() (T, error) {
	if !o.engaged {
		var zero T
		return zero, ErrEmpty
	}
	return o.value, nil
}

// Get returns the held value and whether there was one.
func (o *Optional[T]) Get() (T, bool) {
	return o.value, o.engaged
}

// MustValue returns the held value and panics when the Optional is empty.
func (o *Optional[T]) MustValue() T {
	if !o.engaged {
		panic(fmt.Sprintf("%v: MustValue on empty Optional[%T]", ErrEmpty, o.value))
	}
	return o.value
}

// ValueOr returns the held value, or def when the Optional is empty.
func (o *Optional[T]) ValueOr(def T) T {
	if !o.engaged {
		return def
	}
	return o.value
}

// Ptr returns a pointer to the held value, or nil when empty. The pointer is
// invalidated by Clear and by any operation that replaces the value.
func (o *Optional[T]) Ptr() *T {
	if !o.engaged {
		return nil
	}
	return &o.value
}

// Emplace destroys any held value and constructs a new one in place with init.
func (o *Optional[T]) Emplace(init func(*T)) {
	o.Clear()
	lifecycle.Construct(&o.value, init)
	o.engaged = true
}

// EmplaceDefault destroys any held value and default-constructs a new one.
func (o *Optional[T]) EmplaceDefault() {
	o.Clear()
	lifecycle.ConstructDefault(&o.value)
	o.engaged = true
}

// Set copy-assigns v into the held value, or constructs a copy of v when the
// Optional is empty. Element types without an Assign hook have their old value
// finalized before the copy replaces it.
func (o *Optional[T]) Set(v T) {
	if o.engaged {
		lifecycle.AssignCopy(&o.value, v)
		return
	}
	lifecycle.ConstructCopy(&o.value, v)
	o.engaged = true
}

// Assign makes o hold a copy of src's state. An engaged src is assigned into
// an engaged o without destroying o's value first, and copy-constructed into
// an empty o. An empty src clears o. Assigning an Optional to itself does
// nothing.
func (o *Optional[T]) Assign(src *Optional[T]) {
	if o == src {
		return
	}
	if !src.engaged {
		o.Clear()
		return
	}
	o.Set(src.value)
}

// AssignMove is Assign, except that src's value is transferred rather than
// copied and src is left empty. A value held by o is destroyed first. The
// transferred value is not finalized in src; o owns it now.
func (o *Optional[T]) AssignMove(src *Optional[T]) {
	if o == src {
		return
	}
	if !src.engaged {
		o.Clear()
		return
	}
	o.Clear()
	lifecycle.ConstructMove(&o.value, &src.value)
	o.engaged = true
	src.engaged = false
}

// Clone returns an Optional holding an independent copy of o's value.
func (o *Optional[T]) Clone() Optional[T] {
	if !o.engaged {
		return Optional[T]{}
	}
	return Some(o.value)
}

// Clear destroys the held value. Clearing an empty Optional does nothing.
func (o *Optional[T]) Clear() {
	if !o.engaged {
		return
	}
	o.engaged = false
	lifecycle.DestroyAt(&o.value)
}

// Release is Clear, named for symmetry with the other owning containers.
func (o *Optional[T]) Release() { o.Clear() }

func (o *Optional[T]) String() string {
	if !o.engaged {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
