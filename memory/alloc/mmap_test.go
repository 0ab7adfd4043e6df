package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	Tag  [4]byte
}

func TestNewMmap_RejectsPointerTypes(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
	}{
		{"string", func() error { _, err := NewMmap[string](); return err }},
		{"slice", func() error { _, err := NewMmap[[]int](); return err }},
		{"pointer field", func() error { _, err := NewMmap[struct{ P *int }](); return err }},
		{"interface array", func() error { _, err := NewMmap[[2]any](); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.new(), ErrPointerElem)
		})
	}
}

func TestMmap_AllocateWriteRelease(t *testing.T) {
	m, err := NewMmap[point]()
	require.NoError(t, err)

	p, err := m.Allocate(1000)
	require.NoError(t, err)
	require.Len(t, p, 1000)

	for i := range p {
		assert.Equal(t, point{}, p[i], "fresh mappings are zeroed")
		p[i] = point{X: int32(i), Y: int32(-i)}
	}
	assert.Equal(t, int32(999), p[999].X)

	m.Deallocate(p, 1000)
}

func TestMmap_ZeroAndZeroSized(t *testing.T) {
	m, err := NewMmap[int64]()
	require.NoError(t, err)
	p, err := m.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, p)

	empty, err := NewMmap[struct{}]()
	require.NoError(t, err)
	q, err := empty.Allocate(3)
	require.NoError(t, err)
	assert.Len(t, q, 3)
	empty.Deallocate(q, 3)
}

func TestMmap_EqualAndRebind(t *testing.T) {
	a, err := NewMmap[int32]()
	require.NoError(t, err)
	b, err := NewMmap[int32]()
	require.NoError(t, err)
	assert.True(t, Equal(a, b))

	_, isMmap := Rebind[uint64](Allocator[int32](a)).(*Mmap[uint64])
	assert.True(t, isMmap)

	_, isHeap := Rebind[string](Allocator[int32](a)).(Heap[string])
	assert.True(t, isHeap, "pointer element types fall back to the heap")
}
