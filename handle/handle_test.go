package handle

import (
	"testing"
)

// fakeCloser records every handle passed to close.
type fakeCloser struct {
	closed []Handle
}

func (f *fakeCloser) close(h Handle) error {
	f.closed = append(f.closed, h)
	return nil
}

func TestOwner_ClosesOnce(t *testing.T) {
	fc := &fakeCloser{}
	o := WrapFunc(7, fc.close)

	if !o.IsValid() {
		t.Fatal("Expected a valid handle")
	}

	if err := o.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Second close failed: %v", err)
	}
	if len(fc.closed) != 1 || fc.closed[0] != 7 {
		t.Fatalf("Expected one close of 7, got %v", fc.closed)
	}
}

func TestOwner_InvalidSentinelNeverClosed(t *testing.T) {
	fc := &fakeCloser{}
	o := WrapFunc(Invalid, fc.close)

	if o.IsValid() {
		t.Fatal("Invalid must not report valid")
	}

	if err := o.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(fc.closed) != 0 {
		t.Fatalf("Invalid sentinel must not reach close, got %v", fc.closed)
	}
}

func TestOwner_NullIsClosedButNotValid(t *testing.T) {
	fc := &fakeCloser{}
	o := WrapFunc(Null, fc.close)

	if o.IsValid() {
		t.Fatal("Null must not report valid")
	}

	o.Close()
	if len(fc.closed) != 1 || fc.closed[0] != Null {
		t.Fatalf("Null is closable, got %v", fc.closed)
	}
}

func TestOwner_StealSkipsClose(t *testing.T) {
	fc := &fakeCloser{}
	o := WrapFunc(12, fc.close)

	h := o.Steal()
	if h != 12 {
		t.Fatalf("Expected stolen handle 12, got %d", h)
	}
	if o.Get() != Invalid {
		t.Fatal("Owner must be empty after Steal")
	}

	o.Close()
	if len(fc.closed) != 0 {
		t.Fatal("Close after Steal must not close")
	}
}
