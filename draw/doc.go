// Package draw owns drawing-resource and device-context handles.
//
// The drawing subsystem itself is an external collaborator; this
// package assumes only its call shape, captured by the System
// interface: delete an object, delete a context, and select an object
// into a context returning the previously selected one.
//
// SelectionGuard is not a plain owner: it records the previously
// selected object at construction and re-selects it at Close, a
// save/restore stack of depth one. Nested guards on the same context
// restore in reverse selection order because deferred Closes run
// innermost first.
package draw
