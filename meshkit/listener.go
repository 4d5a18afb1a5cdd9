// File: listener.go
// Role: the listener registry backing spec §6's node_will_be_added /
// node_added / node_will_be_removed / node_removed / simplex_added /
// simplex_removed callbacks. Per spec §9 ("listeners as effects") this
// is a small tagged enum plus a plain callback, not heap-allocated
// listener objects.
//
// Generic over the event payload E so trimesh and tetmesh can each
// instantiate Listeners[Event] with their own dimension-specific Event
// struct without duplicating the registration bookkeeping.
package meshkit

import "github.com/google/uuid"

// EventKind tags which of the six listener hooks an Event carries.
type EventKind int

const (
	SiteWillBeAdded EventKind = iota
	SiteAdded
	SiteWillBeRemoved
	SiteRemoved
	SimplexAdded
	SimplexRemoved
)

func (k EventKind) String() string {
	switch k {
	case SiteWillBeAdded:
		return "SiteWillBeAdded"
	case SiteAdded:
		return "SiteAdded"
	case SiteWillBeRemoved:
		return "SiteWillBeRemoved"
	case SiteRemoved:
		return "SiteRemoved"
	case SimplexAdded:
		return "SimplexAdded"
	case SimplexRemoved:
		return "SimplexRemoved"
	default:
		return "Unknown"
	}
}

// Listeners is a small ordered registry of callbacks for event payload E.
// Registration returns a uuid.UUID token; Unregister takes that token
// back. Callbacks fire in registration order. Not safe for concurrent
// mutation (the mesh is single-writer per spec §5, and listeners are
// only ever registered/fired from the writer).
type Listeners[E any] struct {
	order []uuid.UUID
	fns   map[uuid.UUID]func(E)
}

// NewListeners returns an empty registry.
func NewListeners[E any]() *Listeners[E] {
	return &Listeners[E]{fns: make(map[uuid.UUID]func(E))}
}

// Register adds fn and returns a token that Unregister accepts.
func (l *Listeners[E]) Register(fn func(E)) uuid.UUID {
	id := uuid.New()
	l.fns[id] = fn
	l.order = append(l.order, id)
	return id
}

// Listener is the interface-based alternative to a plain func(E) callback:
// anything with an OnEvent(E) method, including a generated mock, can be
// registered via RegisterListener instead of OnEvent.
type Listener[E any] interface {
	OnEvent(E)
}

// RegisterListener adapts l.OnEvent into the callback form Register takes.
func (l *Listeners[E]) RegisterListener(listener Listener[E]) uuid.UUID {
	return l.Register(listener.OnEvent)
}

// Unregister removes the callback previously returned by Register,
// reporting whether it was found.
func (l *Listeners[E]) Unregister(id uuid.UUID) bool {
	if _, ok := l.fns[id]; !ok {
		return false
	}
	delete(l.fns, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Fire invokes every registered callback with e, in registration order.
// Per spec §7, a callback panic/error propagates straight to the caller
// of the mutating operation and leaves the mesh in its post-mutation,
// pre-listener state — Fire does not recover.
func (l *Listeners[E]) Fire(e E) {
	for _, id := range l.order {
		if fn, ok := l.fns[id]; ok {
			fn(e)
		}
	}
}
