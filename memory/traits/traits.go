// Package traits is the uniform access layer containers use to talk to an
// allocator.
//
// Traits resolves the allocator's layout and capability set once, then routes
// each lifecycle call either to the allocator's own hook or to the default
// primitive in the lifecycle package.
package traits

import (
	"fmt"

	"github.com/joshuapare/goosekit/memory/alloc"
	"github.com/joshuapare/goosekit/memory/lifecycle"
	"github.com/joshuapare/goosekit/memory/probe"
)

// Traits binds an allocator to its resolved layout and capabilities.
type Traits[T any] struct {
	a      alloc.Allocator[T]
	layout alloc.Layout
	caps   probe.Capabilities
}

// New resolves a. A nil allocator selects the default Heap allocator.
func New[T any](a alloc.Allocator[T]) *Traits[T] {
	if a == nil {
		a = alloc.Heap[T]{}
	}
	tr := &Traits[T]{
		a:      a,
		layout: alloc.LayoutOf[T](),
		caps:   probe.For[T](a),
	}
	if tr.caps.Has(probe.Layout) {
		tr.layout = tr.layout.Merge(a.(alloc.LayoutProvider).Layout())
	}
	return tr
}

// Allocator returns the underlying allocator.
func (tr *Traits[T]) Allocator() alloc.Allocator[T] { return tr.a }

// Layout returns the resolved element layout.
func (tr *Traits[T]) Layout() alloc.Layout { return tr.layout }

// Caps returns the allocator's capability set for T.
func (tr *Traits[T]) Caps() probe.Capabilities { return tr.caps }

// MaxCount returns the largest region Allocate will request.
func (tr *Traits[T]) MaxCount() int { return tr.layout.MaxCount }

// Allocate obtains a region of n slots. Failures are returned as-is; nothing
// is retried.
func (tr *Traits[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", alloc.ErrBadCount, n)
	}
	if n > tr.layout.MaxCount {
		return nil, fmt.Errorf("%w: %d > %d", alloc.ErrTooLarge, n, tr.layout.MaxCount)
	}
	return tr.a.Allocate(n)
}

// Deallocate releases a region obtained from Allocate(n). Empty regions are
// ignored.
func (tr *Traits[T]) Deallocate(p []T, n int) {
	if p == nil || n == 0 {
		return
	}
	tr.a.Deallocate(p, n)
}

// ConstructDefault default-constructs an element at p.
func (tr *Traits[T]) ConstructDefault(p *T) error {
	if tr.caps.Has(probe.DefaultConstruct) {
		return tr.a.(alloc.DefaultConstructor[T]).ConstructDefault(p)
	}
	lifecycle.ConstructDefault(p)
	return nil
}

// ConstructCopy constructs a copy of v at p.
func (tr *Traits[T]) ConstructCopy(p *T, v T) error {
	if tr.caps.Has(probe.CopyConstruct) {
		return tr.a.(alloc.CopyConstructor[T]).ConstructCopy(p, v)
	}
	lifecycle.ConstructCopy(p, v)
	return nil
}

// ConstructMove constructs an element at p from the value at src, which no
// longer owns it afterwards.
func (tr *Traits[T]) ConstructMove(p *T, src *T) error {
	if tr.caps.Has(probe.MoveConstruct) {
		return tr.a.(alloc.MoveConstructor[T]).ConstructMove(p, src)
	}
	lifecycle.ConstructMove(p, src)
	return nil
}

// ConstructWith constructs an element at p in place using init.
func (tr *Traits[T]) ConstructWith(p *T, init func(*T)) error {
	if tr.caps.Has(probe.InPlaceConstruct) {
		return tr.a.(alloc.InPlaceConstructor[T]).ConstructWith(p, init)
	}
	lifecycle.Construct(p, init)
	return nil
}

// Destroy destroys the live element at p.
func (tr *Traits[T]) Destroy(p *T) {
	if tr.caps.Has(probe.Destroy) {
		tr.a.(alloc.Destroyer[T]).Destroy(p)
		return
	}
	lifecycle.DestroyAt(p)
}

// Equal reports whether storage from tr's allocator may be released through
// other's allocator.
func (tr *Traits[T]) Equal(other *Traits[T]) bool {
	return alloc.Equal(tr.a, other.a)
}
