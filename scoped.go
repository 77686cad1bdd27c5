package scoped

// Allocator hands out buffers that live outside the Go heap's control.
// Implementations must treat Free(nil) as a no-op, and Alloc reports
// failure by returning nil rather than panicking.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly size bytes, or nil when
	// the allocation cannot be satisfied.
	Alloc(size int) []byte

	// Free returns a buffer previously obtained from Alloc. The buffer
	// must be the exact slice Alloc returned.
	Free(buf []byte)
}

// Dup returns an owned copy of borrowed text, allocated from a. The copy's
// lifetime is independent of the source. Returns nil for empty input or
// on allocation failure.
func Dup(a Allocator, text string) []byte {
	if text == "" {
		return nil
	}
	buf := a.Alloc(len(text))
	if buf == nil {
		return nil
	}
	copy(buf, text)
	return buf
}
