package own

import (
	"github.com/wippyai/scoped"
)

// Str owns an allocator-backed text buffer. It behaves like Mem, with one
// extra mutation: AssignCopy caches an owned copy of borrowed text so the
// owner's lifetime is independent of the source.
type Str struct {
	Mem
}

// NewStr returns an empty text owner backed by a.
func NewStr(a scoped.Allocator) *Str {
	s := &Str{}
	s.alloc = a
	return s
}

// WrapStr takes ownership of a text buffer already obtained from a.
func WrapStr(a scoped.Allocator, buf []byte) *Str {
	s := &Str{}
	s.alloc = a
	s.buf = buf
	return s
}

// AssignCopy frees the current buffer, then stores a freshly allocated
// copy of borrowed. Empty input leaves the owner empty. An allocation
// failure also leaves the owner empty.
func (s *Str) AssignCopy(borrowed string) {
	s.alloc.Free(s.buf)
	s.buf = scoped.Dup(s.alloc, borrowed)
}

// String returns a Go copy of the held text for display. It does not
// transfer ownership of the underlying buffer.
func (s *Str) String() string {
	return string(s.buf)
}
