//go:build unix

package arena

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap serves each allocation from its own anonymous memory mapping. The
// buffers live outside the Go heap; Free unmaps them.
type Mmap struct {
	mu   sync.Mutex
	live map[uintptr][]byte
}

// NewMmap returns an allocator backed by anonymous mappings.
func NewMmap() *Mmap {
	return &Mmap{live: make(map[uintptr][]byte)}
}

// Alloc maps a zeroed buffer of exactly size bytes. Returns nil when size
// is not positive or the mapping fails.
func (m *Mmap) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	m.mu.Lock()
	m.live[uintptr(unsafe.Pointer(&buf[0]))] = buf
	m.mu.Unlock()
	return buf[:size]
}

// Free unmaps a buffer previously returned by Alloc. Free(nil) is a no-op.
// Freeing a buffer this allocator did not hand out is a programmer error
// and panics.
func (m *Mmap) Free(buf []byte) {
	if buf == nil {
		return
	}
	key := uintptr(unsafe.Pointer(&buf[0]))
	m.mu.Lock()
	mapping, ok := m.live[key]
	delete(m.live, key)
	m.mu.Unlock()
	if !ok {
		panic("arena: free of buffer not owned by this allocator")
	}
	_ = unix.Munmap(mapping)
}

// Live returns the number of mappings not yet freed.
func (m *Mmap) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
