package guard

import (
	"sync"

	"github.com/wippyai/scoped/internal/nocopy"
)

// Paired couples a completed acquisition with its release action. The
// release runs exactly once, at the first Close.
type Paired[T any] struct {
	noCopy  nocopy.Marker
	val     T
	release func(T)
}

// Enter runs acquire immediately and returns a guard whose Close runs
// release on the acquired value.
func Enter[T any](acquire func() T, release func(T)) *Paired[T] {
	return &Paired[T]{val: acquire(), release: release}
}

// Value borrows the acquired value without affecting the guard.
func (g *Paired[T]) Value() T {
	return g.val
}

// Close runs the release action. Further calls do nothing.
func (g *Paired[T]) Close() {
	if g.release == nil {
		return
	}
	release := g.release
	g.release = nil
	release(g.val)
}

// LockGuard holds a mutual-exclusion primitive locked for the guard's
// lifetime.
type LockGuard struct {
	noCopy nocopy.Marker
	mu     sync.Locker
}

// Lock blocks until mu is acquired and returns the holding guard.
func Lock(mu sync.Locker) *LockGuard {
	mu.Lock()
	return &LockGuard{mu: mu}
}

// Close unlocks the primitive. Closing twice is a programmer error and
// panics: a second unlock would corrupt the primitive, so it is not a
// tolerated no-op.
func (g *LockGuard) Close() {
	if g.mu == nil {
		panic("guard: lock guard closed twice")
	}
	mu := g.mu
	g.mu = nil
	mu.Unlock()
}
