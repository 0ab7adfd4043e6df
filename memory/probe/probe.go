// Package probe detects which optional allocator capabilities a type provides
// for a given element type.
//
// Detection happens once per (allocator type, element type) pair; the answer
// is cached and never changes afterwards. Each capability is reported
// separately so callers can fall back to the default primitive for exactly the
// operations an allocator does not customise.
package probe

import (
	"reflect"
	"strings"
	"sync"

	"github.com/joshuapare/goosekit/memory/alloc"
)

// Capabilities is a set of optional allocator operations.
type Capabilities uint16

const (
	DefaultConstruct Capabilities = 1 << iota // alloc.DefaultConstructor
	CopyConstruct                             // alloc.CopyConstructor
	MoveConstruct                             // alloc.MoveConstructor
	InPlaceConstruct                          // alloc.InPlaceConstructor
	Destroy                                   // alloc.Destroyer
	Layout                                    // alloc.LayoutProvider
	Equal                                     // alloc.Equaler
)

var names = []struct {
	c    Capabilities
	name string
}{
	{DefaultConstruct, "construct-default"},
	{CopyConstruct, "construct-copy"},
	{MoveConstruct, "construct-move"},
	{InPlaceConstruct, "construct-with"},
	{Destroy, "destroy"},
	{Layout, "layout"},
	{Equal, "equal"},
}

// Has reports whether every capability in want is present.
func (c Capabilities) Has(want Capabilities) bool {
	return c&want == want
}

func (c Capabilities) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

type key struct {
	alloc reflect.Type
	elem  reflect.Type
}

var cache sync.Map // key -> Capabilities

// For returns the capabilities a's dynamic type provides for element type T.
// A nil allocator has none.
func For[T any](a any) Capabilities {
	if a == nil {
		return 0
	}
	k := key{alloc: reflect.TypeOf(a), elem: reflect.TypeFor[T]()}
	if c, ok := cache.Load(k); ok {
		return c.(Capabilities)
	}
	c, _ := cache.LoadOrStore(k, detect[T](a))
	return c.(Capabilities)
}

// Reset drops every cached result.
func Reset() {
	cache.Clear()
}

// detect evaluates the capability set for a. Method sets belong to the type,
// so the answer for one value holds for every value of the same type.
func detect[T any](a any) Capabilities {
	var c Capabilities
	if _, ok := a.(alloc.DefaultConstructor[T]); ok {
		c |= DefaultConstruct
	}
	if _, ok := a.(alloc.CopyConstructor[T]); ok {
		c |= CopyConstruct
	}
	if _, ok := a.(alloc.MoveConstructor[T]); ok {
		c |= MoveConstruct
	}
	if _, ok := a.(alloc.InPlaceConstructor[T]); ok {
		c |= InPlaceConstruct
	}
	if _, ok := a.(alloc.Destroyer[T]); ok {
		c |= Destroy
	}
	if _, ok := a.(alloc.LayoutProvider); ok {
		c |= Layout
	}
	if _, ok := a.(alloc.Equaler); ok {
		c |= Equal
	}
	return c
}
