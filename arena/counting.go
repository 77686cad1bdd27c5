package arena

import (
	"sync"
	"unsafe"
)

// Counting is a GC-backed allocator that tracks every buffer it hands
// out. Tests use it to assert that owners free exactly what they acquire.
type Counting struct {
	mu     sync.Mutex
	live   map[uintptr]struct{}
	allocs int
	frees  int
}

// NewCounting returns an empty counting allocator.
func NewCounting() *Counting {
	return &Counting{live: make(map[uintptr]struct{})}
}

// Alloc returns a zeroed buffer of size bytes, or nil when size is not
// positive.
func (c *Counting) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, size)
	c.mu.Lock()
	c.allocs++
	c.live[uintptr(unsafe.Pointer(&buf[0]))] = struct{}{}
	c.mu.Unlock()
	return buf
}

// Free records the return of a buffer. Free(nil) is a no-op. Freeing a
// buffer twice, or one this allocator did not hand out, panics.
func (c *Counting) Free(buf []byte) {
	if buf == nil {
		return
	}
	key := uintptr(unsafe.Pointer(&buf[0]))
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.live[key]; !ok {
		panic("arena: double free or foreign buffer")
	}
	delete(c.live, key)
	c.frees++
}

// Stats returns the allocation and free counts so far.
func (c *Counting) Stats() (allocs, frees int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs, c.frees
}

// Live returns the number of buffers not yet freed.
func (c *Counting) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}
