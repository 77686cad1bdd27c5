package own

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// Unique owns a single resource value of a comparable kind. The zero value
// of T is the empty sentinel; the release func is never invoked on it.
type Unique[T comparable] struct {
	noCopy  nocopy.Marker
	val     T
	release func(T)
}

// New returns an empty owner that will release with the given func.
func New[T comparable](release func(T)) *Unique[T] {
	return &Unique[T]{release: release}
}

// Wrap takes ownership of an already-acquired resource value.
func Wrap[T comparable](v T, release func(T)) *Unique[T] {
	return &Unique[T]{val: v, release: release}
}

// Get borrows the held value without transferring ownership.
func (o *Unique[T]) Get() T {
	return o.val
}

// Empty reports whether the owner holds no resource.
func (o *Unique[T]) Empty() bool {
	var zero T
	return o.val == zero
}

// Reset releases the currently held value, if any, then stores v.
func (o *Unique[T]) Reset(v T) {
	var zero T
	if o.val != zero {
		o.release(o.val)
	}
	o.val = v
}

// Steal empties the owner and returns the held value. The caller becomes
// responsible for releasing it.
func (o *Unique[T]) Steal() T {
	v := o.val
	var zero T
	o.val = zero
	return v
}

// Close releases the held value. Closing an empty owner does nothing.
func (o *Unique[T]) Close() {
	var zero T
	if o.val == zero {
		return
	}
	v := o.val
	o.val = zero
	o.release(v)
}
