package refcount

import (
	"testing"

	"github.com/google/uuid"
)

var (
	iidStream = NewIID("scopedtest.Stream")
	iidStats  = NewIID("scopedtest.Stats")
)

// Stream is a capability every test object supports.
type Stream interface {
	Unknown
	ReadByte() byte
}

// Stats is a capability only some test objects support.
type Stats interface {
	Unknown
	Count() int
}

// streamObj supports Stream but not Stats.
type streamObj struct {
	Counted
	destroyed *int
}

func newStreamObj(destroyed *int) *streamObj {
	s := &streamObj{destroyed: destroyed}
	s.Init(func() { *s.destroyed++ })
	return s
}

func (s *streamObj) ReadByte() byte { return 0x2A }

func (s *streamObj) QueryInterface(iid IID) (Unknown, bool) {
	if iid == iidStream {
		s.AddRef()
		return s, true
	}
	return nil, false
}

func TestOwner_EmptyCloseReleasesNothing(t *testing.T) {
	o := New[Stream]()
	if !o.Empty() {
		t.Fatal("New owner must be empty")
	}
	o.Close()
}

func TestOwner_CloseReleasesExactlyOneIncrement(t *testing.T) {
	destroyed := 0
	obj := newStreamObj(&destroyed)

	o := Adopt[Stream](obj)
	if o.Get().ReadByte() != 0x2A {
		t.Fatal("Borrowed interface must reach the object")
	}

	o.Close()
	if destroyed != 1 {
		t.Fatalf("Expected destruction at zero refs, got %d", destroyed)
	}

	o.Close()
	if destroyed != 1 {
		t.Fatal("Second close must not release again")
	}
}

func TestOwner_SharedObjectSurvivesOneOwnerClosing(t *testing.T) {
	destroyed := 0
	obj := newStreamObj(&destroyed)
	obj.AddRef() // second increment, held elsewhere

	o := Adopt[Stream](obj)
	o.Close()
	if destroyed != 0 {
		t.Fatal("Owner must release only its own increment")
	}
	if obj.Release() != 0 || destroyed != 1 {
		t.Fatal("Final release must destroy")
	}
}

func TestOwner_ResetReleasesOldFirst(t *testing.T) {
	destroyedA, destroyedB := 0, 0
	a := newStreamObj(&destroyedA)
	b := newStreamObj(&destroyedB)

	o := Adopt[Stream](a)
	o.Reset(b)
	if destroyedA != 1 {
		t.Fatal("Old reference must be released before the new one is stored")
	}
	if destroyedB != 0 {
		t.Fatal("New reference must not be released by Reset")
	}
	o.Close()
	if destroyedB != 1 {
		t.Fatal("New reference released at close")
	}
}

func TestOwner_StealTransfersIncrement(t *testing.T) {
	destroyed := 0
	obj := newStreamObj(&destroyed)

	o := Adopt[Stream](obj)
	p := o.Steal()
	if !o.Empty() {
		t.Fatal("Owner must be empty after Steal")
	}

	o.Close()
	if destroyed != 0 {
		t.Fatal("Close after Steal must not release")
	}

	p.Release()
	if destroyed != 1 {
		t.Fatal("Caller owns the stolen increment")
	}
}

func TestOwner_SlotOutParameterAcquisition(t *testing.T) {
	destroyed := 0

	// an API that fills a caller-provided slot with a counted reference
	produce := func(slot *Stream) {
		*slot = newStreamObj(&destroyed)
	}

	o := New[Stream]()
	produce(o.Slot())
	if o.Empty() {
		t.Fatal("Slot acquisition must occupy the owner")
	}

	o.Close()
	if destroyed != 1 {
		t.Fatalf("Expected exactly one release, got %d", destroyed)
	}
}

func TestOwner_SlotOnOccupiedPanics(t *testing.T) {
	destroyed := 0
	o := Adopt[Stream](newStreamObj(&destroyed))
	defer o.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on occupied slot")
		}
	}()
	o.Slot()
}

func TestQueryFrom_SupportedCapability(t *testing.T) {
	destroyed := 0
	obj := newStreamObj(&destroyed)

	q := QueryFrom[Stream](obj, iidStream)
	if q.Empty() {
		t.Fatal("Supported capability must yield a non-empty owner")
	}
	if obj.Refs() != 2 {
		t.Fatalf("Query must add its own increment, refs=%d", obj.Refs())
	}

	q.Close()
	if destroyed != 0 {
		t.Fatal("Original increment must survive the query owner")
	}
	obj.Release()
	if destroyed != 1 {
		t.Fatal("Final release must destroy")
	}
}

func TestQueryFrom_UnsupportedCapabilityYieldsEmpty(t *testing.T) {
	destroyed := 0
	obj := newStreamObj(&destroyed)

	q := QueryFrom[Stats](obj, iidStats)
	if !q.Empty() {
		t.Fatal("Unsupported capability must yield an empty owner")
	}
	if obj.Refs() != 1 {
		t.Fatalf("Failed query must not touch the refcount, refs=%d", obj.Refs())
	}

	q.Close()
	if destroyed != 0 {
		t.Fatal("Closing an empty query owner must not release")
	}
	obj.Release()
}

func TestQueryFrom_NilSourceYieldsEmpty(t *testing.T) {
	q := QueryFrom[Stream](nil, iidStream)
	if !q.Empty() {
		t.Fatal("Nil source must yield an empty owner")
	}
	q.Close()
}

func TestCreate_RegisteredClass(t *testing.T) {
	destroyed := 0
	classID := uuid.New()
	RegisterClass(classID, func() Unknown { return newStreamObj(&destroyed) })
	defer UnregisterClass(classID)

	o := New[Stream]()
	if !o.Create(classID) {
		t.Fatal("Create must succeed for a registered class")
	}
	o.Close()
	if destroyed != 1 {
		t.Fatalf("Expected exactly one release, got %d", destroyed)
	}
}

func TestCreate_UnknownClassFails(t *testing.T) {
	o := New[Stream]()
	if o.Create(uuid.New()) {
		t.Fatal("Create must fail for an unregistered class")
	}
	if !o.Empty() {
		t.Fatal("Failed Create must leave the owner empty")
	}
}

func TestCreate_FactoryFailureFails(t *testing.T) {
	classID := uuid.New()
	RegisterClass(classID, func() Unknown { return nil })
	defer UnregisterClass(classID)

	o := New[Stream]()
	if o.Create(classID) {
		t.Fatal("Create must report factory failure")
	}
}

func TestCreate_WrongTypeReleasesInstance(t *testing.T) {
	destroyed := 0
	classID := uuid.New()
	RegisterClass(classID, func() Unknown { return newStreamObj(&destroyed) })
	defer UnregisterClass(classID)

	o := New[Stats]()
	if o.Create(classID) {
		t.Fatal("Create must fail when the class lacks the requested interface")
	}
	if destroyed != 1 {
		t.Fatal("The mismatched instance must be released, not leaked")
	}
}

func TestCreate_OccupiedOwnerPanics(t *testing.T) {
	destroyed := 0
	o := Adopt[Stream](newStreamObj(&destroyed))
	defer o.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on occupied owner")
		}
	}()
	o.Create(uuid.New())
}
