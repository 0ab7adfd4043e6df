package probe

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/goosekit/memory/alloc"
)

// copyOnly customises copy construction of ints and nothing else.
type copyOnly struct{ alloc.Heap[int] }

func (copyOnly) ConstructCopy(p *int, v int) error { *p = v * 10; return nil }

// full customises every lifecycle operation for strings.
type full struct{ alloc.Heap[string] }

func (full) ConstructDefault(p *string) error                  { return nil }
func (full) ConstructCopy(p *string, v string) error           { return nil }
func (full) ConstructMove(p *string, src *string) error        { return nil }
func (full) ConstructWith(p *string, init func(*string)) error { return nil }
func (full) Destroy(p *string)                                 {}

func TestFor_DefaultAllocatorHasNoHooks(t *testing.T) {
	t.Cleanup(Reset)
	assert.Equal(t, Capabilities(0), For[int](alloc.Heap[int]{}))
	assert.Equal(t, "none", For[int](alloc.Heap[int]{}).String())
}

func TestFor_CapabilitiesAreIndependent(t *testing.T) {
	t.Cleanup(Reset)
	c := For[int](copyOnly{})

	assert.True(t, c.Has(CopyConstruct))
	assert.False(t, c.Has(DefaultConstruct))
	assert.False(t, c.Has(MoveConstruct))
	assert.False(t, c.Has(Destroy))
	assert.False(t, c.Has(CopyConstruct|Destroy), "Has requires every bit")
}

func TestFor_ElementTypeMatters(t *testing.T) {
	t.Cleanup(Reset)

	// full only customises strings; probing it for ints finds nothing.
	assert.True(t, For[string](full{}).Has(DefaultConstruct|CopyConstruct|MoveConstruct|InPlaceConstruct|Destroy))
	assert.Equal(t, Capabilities(0), For[int](full{}))
}

func TestFor_BuiltinAllocators(t *testing.T) {
	t.Cleanup(Reset)

	limited := alloc.NewLimited[int](alloc.NewBudget(8))
	assert.Equal(t, Layout|Equal, For[int](limited))
	assert.Equal(t, "layout|equal", For[int](limited).String())

	mm, err := alloc.NewMmap[int]()
	assert.NoError(t, err)
	assert.Equal(t, Equal, For[int](mm))
}

func TestFor_CachesPerTypePair(t *testing.T) {
	t.Cleanup(Reset)

	first := For[int](copyOnly{})
	_, cached := cache.Load(key{alloc: reflect.TypeOf(copyOnly{}), elem: reflect.TypeFor[int]()})
	assert.True(t, cached)
	assert.Equal(t, first, For[int](copyOnly{}))

	Reset()
	_, cached = cache.Load(key{alloc: reflect.TypeOf(copyOnly{}), elem: reflect.TypeFor[int]()})
	assert.False(t, cached)
}

func TestFor_Nil(t *testing.T) {
	assert.Equal(t, Capabilities(0), For[int](nil))
}
