package handle

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// Handle is a raw OS handle value.
type Handle int

const (
	// Null is the zero handle. It names no object but is not the
	// platform's failure sentinel.
	Null Handle = 0

	// Invalid is the platform's failure sentinel. It must never be
	// passed to the close primitive.
	Invalid Handle = -1
)

// IsValid reports whether h is a real handle, distinguishing it from
// both empty-like sentinels.
func (h Handle) IsValid() bool {
	return h != Null && h != Invalid
}

// CloseFunc closes a raw handle.
type CloseFunc func(Handle) error

// Owner owns a handle and closes it at Close, unless the handle is the
// Invalid sentinel. The empty state is Invalid.
type Owner struct {
	noCopy  nocopy.Marker
	h       Handle
	closeFn CloseFunc
}

// WrapFunc takes ownership of h, to be closed with closeFn.
func WrapFunc(h Handle, closeFn CloseFunc) *Owner {
	return &Owner{h: h, closeFn: closeFn}
}

// Get borrows the held handle without transferring ownership.
func (o *Owner) Get() Handle {
	return o.h
}

// IsValid reports whether the held handle names a real object.
func (o *Owner) IsValid() bool {
	return o.h.IsValid()
}

// Steal empties the owner and returns the held handle. The caller
// becomes responsible for closing it.
func (o *Owner) Steal() Handle {
	h := o.h
	o.h = Invalid
	return h
}

// Close closes the held handle and empties the owner. Closing the
// Invalid sentinel is a guarded no-op, so an empty or stolen owner
// closes nothing.
func (o *Owner) Close() error {
	h := o.h
	o.h = Invalid
	if h == Invalid {
		return nil
	}
	return o.closeFn(h)
}
