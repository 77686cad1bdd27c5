package track

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Handle identifies one tracked acquisition. Handle 0 is reserved and
// always invalid.
type Handle uint32

// Kind fingerprints a resource kind. Fingerprints are derived from kind
// names so traces from different runs agree.
type Kind uint32

// KindOf derives the fingerprint for a named resource kind.
func KindOf(name string) Kind {
	return Kind(xxhash.Sum64String(name))
}

// EventType classifies a lifecycle event.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
	EventStolen
)

func (t EventType) String() string {
	switch t {
	case EventAcquired:
		return "acquired"
	case EventReleased:
		return "released"
	case EventStolen:
		return "stolen"
	default:
		return "unknown"
	}
}

// Event is one resource lifecycle notification.
type Event struct {
	Time   time.Time
	Label  string
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

type entry struct {
	label string
	kind  Kind
	valid bool
}

// Registry tracks live acquisitions in a free-list table and fans
// lifecycle events out to observers.
type Registry struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Acquired records a new acquisition and returns its handle. A closed
// registry returns 0.
func (r *Registry) Acquired(kind Kind, label string) Handle {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}

	e := entry{kind: kind, label: label, valid: true}
	var h Handle
	if n := len(r.freeList); n > 0 {
		h = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[h-1] = e
	} else {
		r.entries = append(r.entries, e)
		h = Handle(len(r.entries))
	}
	r.mu.Unlock()

	r.notify(Event{Time: time.Now(), Type: EventAcquired, Handle: h, Kind: kind, Label: label})
	return h
}

// Released records that the acquisition was released. Reports false for
// an unknown or already-settled handle.
func (r *Registry) Released(h Handle) bool {
	return r.settle(h, EventReleased)
}

// Stolen records that ownership left the tracked scope without a
// release, for example through an owner's Steal.
func (r *Registry) Stolen(h Handle) bool {
	return r.settle(h, EventStolen)
}

func (r *Registry) settle(h Handle, typ EventType) bool {
	if h == 0 {
		return false
	}

	r.mu.Lock()
	idx := int(h) - 1
	if idx >= len(r.entries) || !r.entries[idx].valid {
		r.mu.Unlock()
		return false
	}
	e := r.entries[idx]
	r.entries[idx] = entry{}
	r.freeList = append(r.freeList, h)
	r.mu.Unlock()

	r.notify(Event{Time: time.Now(), Type: typ, Handle: h, Kind: e.kind, Label: e.label})
	return true
}

// Live returns the number of acquisitions not yet settled.
func (r *Registry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each visits every live acquisition.
func (r *Registry) Each(fn func(Handle, Kind, string) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind, e.label) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Close drains the registry and stops accepting acquisitions. Entries
// still live are leaks; they are logged and counted in the return.
func (r *Registry) Close() int {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	r.closed = true

	var leaked []entry
	for i := range r.entries {
		if r.entries[i].valid {
			leaked = append(leaked, r.entries[i])
			r.entries[i] = entry{}
		}
	}
	r.entries = nil
	r.freeList = nil
	r.mu.Unlock()

	for _, e := range leaked {
		Logger().Warn("resource leaked",
			zap.Uint32("kind", uint32(e.kind)),
			zap.String("label", e.label))
	}
	return len(leaked)
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnResourceEvent(e)
	}
}
