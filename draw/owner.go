package draw

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// ObjectOwner owns one drawing object and deletes it at Close.
type ObjectOwner struct {
	noCopy nocopy.Marker
	sys    System
	obj    Object
	kind   Kind
}

// WrapObject takes ownership of an already-created drawing object.
func WrapObject(sys System, obj Object, kind Kind) *ObjectOwner {
	return &ObjectOwner{sys: sys, obj: obj, kind: kind}
}

// WrapFont takes ownership of a font object.
func WrapFont(sys System, obj Object) *ObjectOwner {
	return WrapObject(sys, obj, KindFont)
}

// WrapPen takes ownership of a pen object.
func WrapPen(sys System, obj Object) *ObjectOwner {
	return WrapObject(sys, obj, KindPen)
}

// WrapBrush takes ownership of a brush object.
func WrapBrush(sys System, obj Object) *ObjectOwner {
	return WrapObject(sys, obj, KindBrush)
}

// Get borrows the held object handle.
func (o *ObjectOwner) Get() Object {
	return o.obj
}

// Kind returns the diagnostic tag recorded at construction.
func (o *ObjectOwner) Kind() Kind {
	return o.kind
}

// Empty reports whether the owner holds no object.
func (o *ObjectOwner) Empty() bool {
	return o.obj == 0
}

// Reset deletes the held object, if any, then stores obj.
func (o *ObjectOwner) Reset(obj Object) {
	if o.obj != 0 {
		o.sys.DeleteObject(o.obj)
	}
	o.obj = obj
}

// Steal empties the owner and returns the held object; the caller
// becomes responsible for deleting it.
func (o *ObjectOwner) Steal() Object {
	obj := o.obj
	o.obj = 0
	return obj
}

// Close deletes the held object. Closing an empty owner does nothing.
func (o *ObjectOwner) Close() {
	if o.obj == 0 {
		return
	}
	obj := o.obj
	o.obj = 0
	o.sys.DeleteObject(obj)
}

// ContextOwner owns one device context and deletes it at Close.
type ContextOwner struct {
	noCopy nocopy.Marker
	sys    System
	dc     Context
}

// WrapContext takes ownership of an already-created device context.
func WrapContext(sys System, dc Context) *ContextOwner {
	return &ContextOwner{sys: sys, dc: dc}
}

// Get borrows the held context handle.
func (o *ContextOwner) Get() Context {
	return o.dc
}

// Empty reports whether the owner holds no context.
func (o *ContextOwner) Empty() bool {
	return o.dc == 0
}

// Reset deletes the held context, if any, then stores dc.
func (o *ContextOwner) Reset(dc Context) {
	if o.dc != 0 {
		o.sys.DeleteContext(o.dc)
	}
	o.dc = dc
}

// Steal empties the owner and returns the held context; the caller
// becomes responsible for deleting it.
func (o *ContextOwner) Steal() Context {
	dc := o.dc
	o.dc = 0
	return dc
}

// Close deletes the held context. Closing an empty owner does nothing.
func (o *ContextOwner) Close() {
	if o.dc == 0 {
		return
	}
	dc := o.dc
	o.dc = 0
	o.sys.DeleteContext(dc)
}
