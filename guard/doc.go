// Package guard provides scope guards for paired acquire/release
// protocols.
//
// Paired is the generic shape: run an acquisition now, run the matching
// release exactly once at Close. LockGuard specializes it for mutual
// exclusion; unlike the owners in package own it offers no Steal or
// Reset, since partial release of a lock held for correctness is not an
// escape hatch worth having.
package guard
