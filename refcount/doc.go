// Package refcount owns reference-counted interface pointers.
//
// The protocol mirrors the classic component model: every interface
// embeds Unknown with AddRef, Release, and QueryInterface. A wrapper
// owns exactly one reference-count increment and releases exactly that
// increment at Close; the underlying object may well be shared through
// other increments held elsewhere.
//
// QueryInterface failure is a normal "capability not supported" outcome
// and yields an empty owner, never an error.
//
// Instances are created through the process class registry: hosts call
// RegisterClass with a ClassID and a factory, and owners instantiate
// with Create. Calling Create on an occupied owner is a programmer
// error and panics.
package refcount
