package page

import (
	"sort"
	"sync"
)

// EventKind identifies what happened on a page
type EventKind int

const (
	// EventRendered fires after a render completes and runs are rebuilt
	EventRendered EventKind = iota
	// EventConverted fires when a run becomes an editable overlay
	EventConverted
	// EventErased fires when a drag rectangle hides glyphs
	EventErased
	// EventRestored fires when an overlay is deleted and its glyphs released
	EventRestored
)

// String returns a string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventRendered:
		return "rendered"
	case EventConverted:
		return "converted"
	case EventErased:
		return "erased"
	case EventRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the controller state changed
type Event struct {
	Kind    EventKind
	Page    int
	Session Session

	// OverlayID is set for overlay events
	OverlayID string

	// Indices are the glyph indices hidden (converted, erased) or shown
	// again (restored)
	Indices []int
}

// Emitter delivers events to subscribers. Each controller owns one; there
// is no package-level bus. Handlers run synchronously, in subscription
// order, on the goroutine that changed the state, after the controller has
// released its lock.
type Emitter struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(Event)
}

// NewEmitter creates an emitter without subscribers
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (e *Emitter) Subscribe(fn func(Event)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.next
	e.next++
	e.handlers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.handlers, id)
		e.mu.Unlock()
	}
}

// Emit calls every current subscriber with ev
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	ids := make([]int, 0, len(e.handlers))
	for id := range e.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, e.handlers[id])
	}
	e.mu.Unlock()

	for _, fn := range handlers {
		fn(ev)
	}
}

// Len returns the number of subscribers
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
