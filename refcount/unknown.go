package refcount

import (
	"reflect"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// IID identifies an interface for capability queries. IDs are stable
// fingerprints of the interface name, so independent processes agree on
// them without central registration.
type IID uint64

// NewIID derives the identifier for a named interface.
func NewIID(name string) IID {
	return IID(xxhash.Sum64String(name))
}

// Unknown is the root protocol of every reference-counted interface.
type Unknown interface {
	// AddRef increments the reference count and returns the new count.
	AddRef() int32

	// Release decrements the reference count, destroying the object at
	// zero, and returns the new count.
	Release() int32

	// QueryInterface returns a view of the object for the requested
	// capability with its own reference-count increment, or ok=false
	// when the capability is not supported.
	QueryInterface(iid IID) (Unknown, bool)
}

// Counted implements the AddRef/Release bookkeeping for host objects.
// Embed it and pass the final-release action to Init.
type Counted struct {
	refs    atomic.Int32
	onFinal func()
}

// Init sets the count to one and records the action to run when the
// last reference is released.
func (c *Counted) Init(onFinal func()) {
	c.refs.Store(1)
	c.onFinal = onFinal
}

// AddRef increments the reference count.
func (c *Counted) AddRef() int32 {
	return c.refs.Add(1)
}

// Release decrements the reference count, running the final action at
// zero.
func (c *Counted) Release() int32 {
	n := c.refs.Add(-1)
	if n == 0 && c.onFinal != nil {
		c.onFinal()
	}
	return n
}

// Refs returns the current reference count.
func (c *Counted) Refs() int32 {
	return c.refs.Load()
}

// isNil reports emptiness for interface-typed fields, treating a typed
// nil pointer inside the interface as empty too.
func isNil(u Unknown) bool {
	if u == nil {
		return true
	}
	rv := reflect.ValueOf(u)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
