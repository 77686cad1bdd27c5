package refcount

import (
	"sync"

	"github.com/google/uuid"
)

// ClassID identifies an instantiable class in the process registry.
type ClassID = uuid.UUID

// Factory constructs a new instance with its reference count already at
// one. A factory may return nil to report an instantiation failure.
type Factory func() Unknown

var classes = struct {
	mu        sync.RWMutex
	factories map[ClassID]Factory
}{factories: make(map[ClassID]Factory)}

// RegisterClass installs a factory for classID, replacing any previous
// registration.
func RegisterClass(classID ClassID, f Factory) {
	classes.mu.Lock()
	defer classes.mu.Unlock()
	classes.factories[classID] = f
}

// UnregisterClass removes the factory for classID.
func UnregisterClass(classID ClassID) {
	classes.mu.Lock()
	defer classes.mu.Unlock()
	delete(classes.factories, classID)
}

func newInstance(classID ClassID) (Unknown, bool) {
	classes.mu.RLock()
	f, ok := classes.factories[classID]
	classes.mu.RUnlock()
	if !ok {
		return nil, false
	}
	inst := f()
	if isNil(inst) {
		return nil, false
	}
	return inst, true
}
