// Package scoped binds the lifetime of non-garbage-collected resources to
// the scope of a single owning variable.
//
// Go's garbage collector reclaims memory, but not OS handles, foreign
// allocations, locks, drawing objects, or reference-counted interfaces.
// This library provides one ownership discipline for all of them: each
// wrapper holds exactly one resource, releases it exactly once when the
// owner is closed, and never releases a resource that was stolen or
// never acquired.
//
// # Architecture Overview
//
// The library is organized into small packages, one per resource kind:
//
//	scoped/            Root package with collaborator contracts (Allocator)
//	├── own/           Generic unique owners for values, objects, buffers, text
//	├── arena/         Allocator implementations (mmap-backed, counting)
//	├── guard/         Paired acquire/release guard and the lock guard
//	├── handle/        OS handle owner with dual empty sentinels
//	├── refcount/      Reference-counted interface owners and class registry
//	├── draw/          Drawing-object and device-context owners, selection guard
//	├── subsystem/     Process-wide subsystem init guards and ordered stack
//	├── track/         Optional live-resource registry and trace output
//	└── cmd/scopedtrace/  Leak report tool over track traces
//
// # Ownership Contract
//
// Every wrapper obeys the same rules:
//
//   - At most one live owner per resource. Owners are non-copyable;
//     go vet rejects copies.
//   - Close releases the resource if one is held, then empties the owner.
//     Closing an empty owner does nothing.
//   - Steal empties the owner and hands the resource to the caller
//     without releasing it.
//   - Get borrows: the returned value stays owned by the wrapper and
//     must not be released by the caller.
//
// The Go spelling of "scope exit" is a deferred Close at the
// acquisition site:
//
//	buf := own.AllocMem(alloc, 4096)
//	defer buf.Close()
//
// # Quick Start
//
// Own a foreign allocation:
//
//	a := arena.NewMmap()
//	m := own.AllocMem(a, 1<<20)
//	defer m.Close()
//	payload := m.Get() // borrowed, do not free
//
// Hold a lock for the rest of the function:
//
//	g := guard.Lock(&mu)
//	defer g.Close()
//
// Acquire a reference-counted interface by capability query:
//
//	q := refcount.QueryFrom[Renderer](dev, rendererIID)
//	defer q.Close()
//	if q.Empty() {
//	    // capability not supported; not an error
//	}
package scoped
