package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type customRebind[T any] struct{ Heap[T] }

func (customRebind[T]) Rebind() Allocator[string] { return customRebind[string]{} }

func TestLayoutOf(t *testing.T) {
	l := LayoutOf[int64]()
	assert.Equal(t, uintptr(8), l.Size)
	assert.Equal(t, uintptr(8), l.Align)
	assert.Equal(t, math.MaxInt/8, l.MaxCount)

	empty := LayoutOf[struct{}]()
	assert.Equal(t, uintptr(0), empty.Size)
	assert.Equal(t, math.MaxInt, empty.MaxCount)
}

func TestLayout_MergeKeepsDefaultsForZeroFields(t *testing.T) {
	l := LayoutOf[int32]().Merge(Layout{MaxCount: 7})
	assert.Equal(t, uintptr(4), l.Size)
	assert.Equal(t, uintptr(4), l.Align)
	assert.Equal(t, 7, l.MaxCount)
}

func TestRebind(t *testing.T) {
	t.Run("default substitutes element type", func(t *testing.T) {
		_, ok := Rebind[string](Allocator[int](Heap[int]{})).(Heap[string])
		assert.True(t, ok)
	})
	t.Run("rebinder wins", func(t *testing.T) {
		_, ok := Rebind[string](Allocator[int](customRebind[int]{})).(customRebind[string])
		assert.True(t, ok)
	})
	t.Run("limited shares budget", func(t *testing.T) {
		b := NewBudget(10)
		l, ok := Rebind[byte](Allocator[int](NewLimited[int](b))).(*Limited[byte])
		assert.True(t, ok)
		assert.Same(t, b, l.Budget())
	})
}
