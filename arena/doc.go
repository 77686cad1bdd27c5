// Package arena provides Allocator implementations for the memory owners.
//
// Mmap serves buffers from anonymous memory mappings, entirely outside the
// Go heap. Counting is a GC-backed allocator that keeps allocation and
// free counts, intended for tests and leak checks.
package arena
