// Package nocopy provides a zero-size marker that makes go vet reject
// by-value copies of the embedding struct.
package nocopy

// Marker triggers vet's copylocks check when embedded in a struct.
// It occupies no space and does nothing at runtime.
type Marker struct{}

// Lock is a no-op used by vet's copylocks analysis.
func (*Marker) Lock() {}

// Unlock is a no-op used by vet's copylocks analysis.
func (*Marker) Unlock() {}
