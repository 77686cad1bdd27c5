package arena

import (
	"testing"
)

func TestCounting_Basic(t *testing.T) {
	a := NewCounting()

	buf := a.Alloc(32)
	if len(buf) != 32 {
		t.Fatalf("Expected 32 bytes, got %d", len(buf))
	}
	if a.Live() != 1 {
		t.Fatalf("Expected 1 live buffer, got %d", a.Live())
	}

	a.Free(buf)
	if allocs, frees := a.Stats(); allocs != 1 || frees != 1 {
		t.Fatalf("Expected 1/1, got %d/%d", allocs, frees)
	}
}

func TestCounting_FreeNilIsNoop(t *testing.T) {
	a := NewCounting()
	a.Free(nil)
	if _, frees := a.Stats(); frees != 0 {
		t.Fatal("Free(nil) must not count as a free")
	}
}

func TestCounting_DoubleFreePanics(t *testing.T) {
	a := NewCounting()
	buf := a.Alloc(8)
	a.Free(buf)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on double free")
		}
	}()
	a.Free(buf)
}

func TestCounting_ZeroSizeFails(t *testing.T) {
	a := NewCounting()
	if a.Alloc(0) != nil {
		t.Fatal("Alloc(0) must fail")
	}
}
