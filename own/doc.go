// Package own provides generic single-owner wrappers for resources the
// garbage collector cannot reclaim.
//
// Four shapes cover the common cases:
//
//	Unique[T]  any comparable resource value with a caller-supplied release
//	Heap[T]    a single foreign object with a destructor
//	Mem        an allocator-owned buffer
//	Str        an allocator-owned text buffer with copy-assignment
//
// All four follow the module's ownership contract: non-copyable, release
// exactly once on Close or Reset, Steal to transfer ownership out, Get to
// borrow without transfer.
package own
