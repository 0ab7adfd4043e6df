// Package testutil provides element types and allocators that record their
// lifecycle, for use in container tests.
package testutil

import (
	"slices"
	"testing"
)

// EventKind identifies a lifecycle event recorded by a Journal.
type EventKind int

const (
	EventInit EventKind = iota + 1
	EventCopy
	EventAssign
	EventFinalize
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventCopy:
		return "copy"
	case EventAssign:
		return "assign"
	case EventFinalize:
		return "finalize"
	default:
		return "unknown"
	}
}

// Event is a single recorded lifecycle call.
type Event struct {
	Kind EventKind
	ID   int
}

// Journal records lifecycle events of Tracked values.
type Journal struct {
	events []Event
	nextID int
}

var current *Journal

// Track installs a fresh Journal for the duration of the test. Tracked values
// record into whichever journal is installed; with none installed they record
// nothing.
func Track(t testing.TB) *Journal {
	t.Helper()
	prev := current
	j := &Journal{nextID: 1000}
	current = j
	t.Cleanup(func() { current = prev })
	return j
}

func record(kind EventKind, id int) {
	if current != nil {
		current.events = append(current.events, Event{Kind: kind, ID: id})
	}
}

// Events returns a copy of the recorded events.
func (j *Journal) Events() []Event { return slices.Clone(j.events) }

// Count returns how many events of kind were recorded.
func (j *Journal) Count(kind EventKind) int {
	n := 0
	for _, e := range j.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Constructions returns the number of default and copy constructions.
func (j *Journal) Constructions() int { return j.Count(EventInit) + j.Count(EventCopy) }

// Destructions returns the number of finalizations.
func (j *Journal) Destructions() int { return j.Count(EventFinalize) }

// IDs returns the IDs of events of kind, in order.
func (j *Journal) IDs(kind EventKind) []int {
	var ids []int
	for _, e := range j.events {
		if e.Kind == kind {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Reset forgets every recorded event.
func (j *Journal) Reset() { j.events = nil }

// Tracked is an element type implementing every lifecycle hook. Its Data slice
// makes value independence observable: copies must not share it.
type Tracked struct {
	ID   int
	Data []int
}

// Init gives default-constructed values a fresh ID, starting at 1000.
func (t *Tracked) Init() {
	if current != nil {
		t.ID = current.nextID
		current.nextID++
	}
	record(EventInit, t.ID)
}

// Clone returns a deep copy.
func (t *Tracked) Clone() Tracked {
	record(EventCopy, t.ID)
	return Tracked{ID: t.ID, Data: slices.Clone(t.Data)}
}

// Assign copy-assigns src into t without a destroy/construct pair.
func (t *Tracked) Assign(src Tracked) {
	record(EventAssign, src.ID)
	t.ID = src.ID
	t.Data = append(t.Data[:0], src.Data...)
}

// Finalize records the destruction.
func (t *Tracked) Finalize() {
	record(EventFinalize, t.ID)
}
