package own

import (
	"github.com/wippyai/scoped"
	"github.com/wippyai/scoped/internal/nocopy"
)

// Mem owns a buffer obtained from an Allocator and frees it at Close.
type Mem struct {
	noCopy nocopy.Marker
	buf    []byte
	alloc  scoped.Allocator
}

// NewMem returns an empty buffer owner backed by a.
func NewMem(a scoped.Allocator) *Mem {
	return &Mem{alloc: a}
}

// WrapMem takes ownership of a buffer already obtained from a.
func WrapMem(a scoped.Allocator, buf []byte) *Mem {
	return &Mem{alloc: a, buf: buf}
}

// AllocMem allocates size bytes from a and owns the result. An allocation
// failure yields an empty owner.
func AllocMem(a scoped.Allocator, size int) *Mem {
	return &Mem{alloc: a, buf: a.Alloc(size)}
}

// Get borrows the held buffer. The caller must not free it.
func (m *Mem) Get() []byte {
	return m.buf
}

// Empty reports whether the owner holds no buffer.
func (m *Mem) Empty() bool {
	return m.buf == nil
}

// Len returns the held buffer's length, zero when empty.
func (m *Mem) Len() int {
	return len(m.buf)
}

// Reset frees the currently held buffer, if any, then stores buf.
func (m *Mem) Reset(buf []byte) {
	m.alloc.Free(m.buf)
	m.buf = buf
}

// Steal empties the owner and returns the held buffer. The caller becomes
// responsible for freeing it.
func (m *Mem) Steal() []byte {
	buf := m.buf
	m.buf = nil
	return buf
}

// Close frees the held buffer. Closing an empty owner does nothing.
func (m *Mem) Close() {
	buf := m.buf
	m.buf = nil
	m.alloc.Free(buf)
}
