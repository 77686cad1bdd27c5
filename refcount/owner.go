package refcount

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// Owner owns one reference-count increment on an interface of type T.
// T must be an interface type embedding Unknown.
type Owner[T Unknown] struct {
	noCopy nocopy.Marker
	ptr    T
}

// New returns an empty owner.
func New[T Unknown]() *Owner[T] {
	return &Owner[T]{}
}

// Adopt takes over an increment that the caller already holds; no
// AddRef is performed.
func Adopt[T Unknown](p T) *Owner[T] {
	return &Owner[T]{ptr: p}
}

// Get borrows the held interface without transferring the increment.
func (o *Owner[T]) Get() T {
	return o.ptr
}

// Empty reports whether the owner holds no reference.
func (o *Owner[T]) Empty() bool {
	return isNil(o.ptr)
}

// Reset releases the held increment, if any, then adopts p.
func (o *Owner[T]) Reset(p T) {
	if !isNil(o.ptr) {
		o.ptr.Release()
	}
	o.ptr = p
}

// Steal empties the owner and returns the held interface; the caller
// now owns the increment.
func (o *Owner[T]) Steal() T {
	p := o.ptr
	var zero T
	o.ptr = zero
	return p
}

// Slot exposes the internal field for out-parameter acquisition, the
// pattern where an API fills a caller-provided location with an already
// counted reference. The returned alias must not be retained beyond
// that single call. Filling an occupied slot is a programmer error and
// panics.
func (o *Owner[T]) Slot() *T {
	if !isNil(o.ptr) {
		panic("refcount: Slot on an occupied owner")
	}
	return &o.ptr
}

// Create instantiates classID through the process class registry and
// adopts the instance. It reports whether instantiation succeeded; a
// registered-but-failing factory and an unknown class are both ordinary
// failures. Calling Create on an occupied owner is a programmer error
// and panics.
func (o *Owner[T]) Create(classID ClassID) bool {
	if !isNil(o.ptr) {
		panic("refcount: Create on an occupied owner")
	}
	inst, ok := newInstance(classID)
	if !ok {
		return false
	}
	p, ok := inst.(T)
	if !ok {
		inst.Release()
		return false
	}
	o.ptr = p
	return true
}

// Close releases the held increment. Closing an empty owner does
// nothing.
func (o *Owner[T]) Close() {
	if isNil(o.ptr) {
		return
	}
	p := o.ptr
	var zero T
	o.ptr = zero
	p.Release()
}

// QueryOwner is an Owner acquired through a capability query rather
// than direct transfer.
type QueryOwner[T Unknown] struct {
	Owner[T]
}

// QueryFrom asks src for the capability identified by iid. A failed
// query yields an empty owner; no reference is released, since none was
// acquired. A nil src also yields an empty owner.
func QueryFrom[T Unknown](src Unknown, iid IID) *QueryOwner[T] {
	q := &QueryOwner[T]{}
	q.ResetFrom(src, iid)
	return q
}

// ResetFrom releases the held increment, if any, then re-acquires from
// src by capability query. On query failure the owner is left empty.
func (q *QueryOwner[T]) ResetFrom(src Unknown, iid IID) {
	if !isNil(q.ptr) {
		q.ptr.Release()
	}
	var zero T
	q.ptr = zero
	if isNil(src) {
		return
	}
	view, ok := src.QueryInterface(iid)
	if !ok {
		return
	}
	p, ok := view.(T)
	if !ok {
		// queried capability exists but is not the requested Go type;
		// hand the fresh increment back
		view.Release()
		return
	}
	q.ptr = p
}
