package own

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// Heap owns a single foreign object and runs its destructor at Close.
type Heap[T any] struct {
	noCopy  nocopy.Marker
	obj     *T
	destroy func(*T)
}

// NewHeap returns an empty object owner with the given destructor.
func NewHeap[T any](destroy func(*T)) *Heap[T] {
	return &Heap[T]{destroy: destroy}
}

// WrapHeap takes ownership of an already-constructed object.
func WrapHeap[T any](obj *T, destroy func(*T)) *Heap[T] {
	return &Heap[T]{obj: obj, destroy: destroy}
}

// Get borrows the held object, which may be nil.
func (o *Heap[T]) Get() *T {
	return o.obj
}

// Deref returns the held object's value. Dereferencing an empty owner is
// a programmer error and panics.
func (o *Heap[T]) Deref() T {
	if o.obj == nil {
		panic("own: deref of empty object owner")
	}
	return *o.obj
}

// Empty reports whether the owner holds no object.
func (o *Heap[T]) Empty() bool {
	return o.obj == nil
}

// Reset destroys the currently held object, if any, then stores obj.
func (o *Heap[T]) Reset(obj *T) {
	if o.obj != nil {
		o.destroy(o.obj)
	}
	o.obj = obj
}

// Steal empties the owner and returns the held object. The caller becomes
// responsible for destroying it.
func (o *Heap[T]) Steal() *T {
	obj := o.obj
	o.obj = nil
	return obj
}

// Close destroys the held object. Closing an empty owner does nothing.
func (o *Heap[T]) Close() {
	if o.obj == nil {
		return
	}
	obj := o.obj
	o.obj = nil
	o.destroy(obj)
}
