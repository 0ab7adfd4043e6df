// Package lifecycle provides the default construction and destruction
// primitives used by goosekit containers.
//
// Storage handed out by an allocator is raw: a slot holds no live element until
// one of the Construct functions has run on it, and it stops holding one once
// DestroyAt has run. Element types opt in to custom behaviour by implementing
// the hook interfaces below on their pointer receiver.
//
//	type conn struct{ fd int }
//
//	func (c *conn) Init()     { c.fd = -1 }
//	func (c *conn) Finalize() { closeFD(c.fd) }
//
// Types that implement none of the hooks are constructed by plain assignment
// and destroyed by zeroing the slot.
package lifecycle

// Initializer is implemented by element types that need work beyond the zero
// value when default-constructed.
type Initializer interface {
	Init()
}

// Finalizer is implemented by element types that release resources when
// destroyed.
type Finalizer interface {
	Finalize()
}

// Cloner is implemented by element types whose copies must not share state
// with the original (slices, maps, pointers).
type Cloner[T any] interface {
	Clone() T
}

// Assigner is implemented by element types that copy-assign into an already
// live value instead of being overwritten.
type Assigner[T any] interface {
	Assign(src T)
}

// ConstructDefault default-constructs a value at p.
func ConstructDefault[T any](p *T) {
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		in.Init()
	}
}

// Construct builds a value at p in place. init receives the zeroed slot and
// plays the role of a constructor taking arbitrary arguments.
func Construct[T any](p *T, init func(*T)) {
	var zero T
	*p = zero
	if init != nil {
		init(p)
	}
}

// ConstructCopy copy-constructs v at p.
func ConstructCopy[T any](p *T, v T) {
	*p = Copy(v)
}

// ConstructMove transfers the value at src into p. src is left zeroed and
// must not be destroyed afterwards: the value now belongs to p.
func ConstructMove[T any](p *T, src *T) {
	*p = *src
	var zero T
	*src = zero
}

// AssignCopy copy-assigns v into the live value at dst. Without an Assigner
// the old value is destroyed and a copy of v is constructed in its place, so
// a Finalizer still runs for the value being replaced.
func AssignCopy[T any](dst *T, v T) {
	if as, ok := any(dst).(Assigner[T]); ok {
		as.Assign(v)
		return
	}
	c := Copy(v)
	DestroyAt(dst)
	*dst = c
}

// DestroyAt destroys the live value at p and zeroes the slot.
func DestroyAt[T any](p *T) {
	if fin, ok := any(p).(Finalizer); ok {
		fin.Finalize()
	}
	var zero T
	*p = zero
}

// Copy returns a copy of v that shares no mutable state with it when T
// implements Cloner, and a plain value copy otherwise.
func Copy[T any](v T) T {
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
