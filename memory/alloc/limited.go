package alloc

import (
	"fmt"
	"sync"
)

// Budget is a byte allowance shared by any number of Limited allocators,
// regardless of their element type. It is safe for concurrent use.
type Budget struct {
	mu    sync.Mutex
	limit int
	inUse int
	peak  int
}

// NewBudget returns a budget allowing limit bytes to be in use at once.
func NewBudget(limit int) *Budget {
	return &Budget{limit: max(limit, 0)}
}

// Limit returns the total number of bytes the budget allows.
func (b *Budget) Limit() int { return b.limit }

// InUse returns the number of bytes currently charged.
func (b *Budget) InUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inUse
}

// Peak returns the high-water mark of InUse.
func (b *Budget) Peak() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.peak
}

// Available returns the number of bytes that can still be charged.
func (b *Budget) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit - b.inUse
}

func (b *Budget) charge(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > b.limit-b.inUse {
		return fmt.Errorf("%w: need %d bytes, %d of %d available",
			ErrOutOfMemory, n, b.limit-b.inUse, b.limit)
	}
	b.inUse += n
	b.peak = max(b.peak, b.inUse)
	return nil
}

func (b *Budget) refund(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inUse = max(b.inUse-n, 0)
}

// Limited hands out heap storage while keeping the total charged against its
// Budget at or below the budget's limit.
type Limited[T any] struct {
	budget *Budget
}

// NewLimited returns an allocator for T charging b.
func NewLimited[T any](b *Budget) *Limited[T] {
	return &Limited[T]{budget: b}
}

// Budget returns the budget this allocator charges.
func (l *Limited[T]) Budget() *Budget { return l.budget }

// Allocate charges the budget for n slots and returns them. Nothing is charged
// when the request fails.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	size, err := regionBytes[T](n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if err := l.budget.charge(size); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate zeroes the region and refunds its bytes to the budget.
func (l *Limited[T]) Deallocate(p []T, n int) {
	size, err := regionBytes[T](n)
	if err != nil || n == 0 {
		return
	}
	clear(p[:min(n, len(p))])
	l.budget.refund(size)
}

// Equal reports whether other is a Limited allocator charging the same budget.
func (l *Limited[T]) Equal(other any) bool {
	o, ok := other.(*Limited[T])
	return ok && o.budget == l.budget
}

// Layout caps the element count of a single region at what the whole budget
// could hold.
func (l *Limited[T]) Layout() Layout {
	layout := LayoutOf[T]()
	if layout.Size > 0 {
		layout.MaxCount = max(l.budget.Limit()/int(layout.Size), 1)
	}
	return layout
}
