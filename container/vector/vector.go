package vector

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/goosekit/container/seq"
	"github.com/joshuapare/goosekit/memory/alloc"
	"github.com/joshuapare/goosekit/memory/traits"
)

// Vector is an owning dynamic array. The zero value is not usable; create
// one with New or one of the other constructors.
type Vector[T any] struct {
	tr *traits.Traits[T]

	// elems is the owned region; len(elems) is the capacity. Slots at
	// [size, len(elems)) hold no live element.
	elems []T
	size  int

	log *slog.Logger
}

func newVector[T any](opts []Option[T]) *Vector[T] {
	c := buildConfig(opts)
	return &Vector[T]{tr: traits.New(c.alloc), log: c.log}
}

// New returns an empty Vector. No storage is allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	return newVector(opts)
}

// NewFilled returns a Vector holding count copies of v.
func NewFilled[T any](count int, v T, opts ...Option[T]) (*Vector[T], error) {
	vec := newVector(opts)
	err := vec.build(count, func(_ int, p *T) error {
		return vec.tr.ConstructCopy(p, v)
	})
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// NewSized returns a Vector holding count default-constructed elements.
func NewSized[T any](count int, opts ...Option[T]) (*Vector[T], error) {
	vec := newVector(opts)
	err := vec.build(count, func(_ int, p *T) error {
		return vec.tr.ConstructDefault(p)
	})
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// FromRange returns a Vector holding copies of the elements in [first, last),
// in order.
func FromRange[T any](first, last seq.Cursor[T], opts ...Option[T]) (*Vector[T], error) {
	if !seq.SameRange(first, last) {
		return nil, fmt.Errorf("vector: cursors over different storage: %w", alloc.ErrBadCount)
	}
	n := seq.Distance(first, last)
	if n < 0 {
		return nil, fmt.Errorf("vector: reversed range: %w", alloc.ErrBadCount)
	}
	vec := newVector(opts)
	err := vec.build(n, func(i int, p *T) error {
		return vec.tr.ConstructCopy(p, first.Add(i).Get())
	})
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// Of returns a Vector holding copies of values, in order.
func Of[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	view := seq.SliceView[T](values)
	return FromRange(view.Begin(), view.End(), opts...)
}

// build allocates exactly count slots and constructs each one with construct.
// On failure every element constructed so far is destroyed, in index order,
// and the region is released before the error is returned.
func (v *Vector[T]) build(count int, construct func(i int, p *T) error) error {
	region, err := v.tr.Allocate(count)
	if err != nil {
		v.log.Debug("vector: allocation failed", "count", count, "error", err)
		return fmt.Errorf("vector: allocate %d: %w", count, err)
	}
	for i := range count {
		if err := construct(i, &region[i]); err != nil {
			v.rollback(region, 0, i, count)
			v.log.Debug("vector: construction failed, rolled back", "index", i, "count", count, "error", err)
			return fmt.Errorf("vector: construct element %d: %w", i, err)
		}
	}
	v.elems = region
	v.size = count
	return nil
}

// rollback destroys the live elements region[from:to] in index order and, when
// capacity is non-zero, releases the region.
func (v *Vector[T]) rollback(region []T, from, to, capacity int) {
	for i := from; i < to; i++ {
		v.tr.Destroy(&region[i])
	}
	if capacity > 0 {
		v.tr.Deallocate(region, capacity)
	}
}

// Clone returns a Vector holding copies of v's live elements. Its capacity is
// v.Len(); spare capacity is not carried over. Without WithAllocator the clone
// uses v's allocator.
func (v *Vector[T]) Clone(opts ...Option[T]) (*Vector[T], error) {
	c := config[T]{alloc: v.tr.Allocator(), log: v.log}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = v.log
	}
	dst := &Vector[T]{tr: traits.New(c.alloc), log: c.log}
	err := dst.build(v.size, func(i int, p *T) error {
		return dst.tr.ConstructCopy(p, v.elems[i])
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// Move transfers v's storage, elements and allocator to a new Vector without
// reallocating. v is left empty with capacity 0, and releasing it is a no-op.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{tr: v.tr, elems: v.elems, size: v.size, log: v.log}
	v.elems = nil
	v.size = 0
	return dst
}

// MoveTo transfers v's elements to a new Vector using allocator a. When a is
// equal to v's allocator the storage is adopted as in Move; otherwise a new
// region of v.Len() slots is allocated from a and each element is
// move-constructed into it. On failure v is left unchanged.
func (v *Vector[T]) MoveTo(a alloc.Allocator[T]) (*Vector[T], error) {
	tr := traits.New(a)
	if tr.Equal(v.tr) {
		dst := v.Move()
		dst.tr = tr
		return dst, nil
	}

	dst := &Vector[T]{tr: tr, log: v.log}
	if err := dst.adopt(v.elems, v.tr, v.size, v.size); err != nil {
		return nil, err
	}
	v.tr.Deallocate(v.elems, len(v.elems))
	v.elems = nil
	v.size = 0
	return dst, nil
}

// adopt allocates capacity slots from v's allocator and move-constructs the
// size live elements of src into them. v must not own a region yet. If a move
// fails, the elements already moved are moved back into src through srcTr,
// the traits that own src. A move back that itself fails falls back to a raw
// transfer so that no element is lost.
func (v *Vector[T]) adopt(src []T, srcTr *traits.Traits[T], size, capacity int) error {
	region, err := v.tr.Allocate(capacity)
	if err != nil {
		v.log.Debug("vector: allocation failed", "count", capacity, "error", err)
		return fmt.Errorf("vector: allocate %d: %w", capacity, err)
	}
	for i := range size {
		if err := v.tr.ConstructMove(&region[i], &src[i]); err != nil {
			for j := range i {
				if err := srcTr.ConstructMove(&src[j], &region[j]); err != nil {
					src[j] = region[j]
				}
			}
			v.tr.Deallocate(region, capacity)
			v.log.Debug("vector: relocation failed, restored", "index", i, "error", err)
			return fmt.Errorf("vector: move element %d: %w", i, err)
		}
	}
	v.elems = region
	v.size = size
	return nil
}

// Release destroys every live element in index order and then frees the
// region. Release is idempotent; the Vector is empty afterwards and may be
// reused.
func (v *Vector[T]) Release() {
	if v.elems == nil {
		v.size = 0
		return
	}
	v.rollback(v.elems, 0, v.size, len(v.elems))
	v.elems = nil
	v.size = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the owned region.
func (v *Vector[T]) Cap() int { return len(v.elems) }

// Empty reports whether the Vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Allocator returns the allocator backing the Vector.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.tr.Allocator() }
