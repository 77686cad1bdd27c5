package subsystem

import (
	"errors"
	"testing"
)

// fakeSubsystem logs lifecycle calls by name into a shared journal.
type fakeSubsystem struct {
	name       string
	journal    *[]string
	startupErr error
	hookable   bool
}

func (f *fakeSubsystem) Name() string { return f.name }

func (f *fakeSubsystem) Startup() (Token, error) {
	if f.startupErr != nil {
		return 0, f.startupErr
	}
	*f.journal = append(*f.journal, "startup "+f.name)
	return Token(1), nil
}

func (f *fakeSubsystem) Shutdown(token Token) {
	*f.journal = append(*f.journal, "shutdown "+f.name)
}

// hookedSubsystem additionally supports notification hooks.
type hookedSubsystem struct {
	fakeSubsystem
}

func (f *hookedSubsystem) InstallHook() HookToken {
	*f.journal = append(*f.journal, "install-hook "+f.name)
	return HookToken(2)
}

func (f *hookedSubsystem) RemoveHook(token HookToken) {
	*f.journal = append(*f.journal, "remove-hook "+f.name)
}

func TestGuard_StartupShutdownOnce(t *testing.T) {
	var journal []string
	g := Start(&fakeSubsystem{name: "compose", journal: &journal})

	if !g.Started() {
		t.Fatal("Expected started guard")
	}

	g.Close()
	g.Close()

	want := []string{"startup compose", "shutdown compose"}
	if len(journal) != len(want) {
		t.Fatalf("Expected %v, got %v", want, journal)
	}
}

func TestGuard_StartupFailureIsInert(t *testing.T) {
	var journal []string
	boom := errors.New("no display")
	g := Start(&fakeSubsystem{name: "compose", journal: &journal, startupErr: boom})

	if g.Started() {
		t.Fatal("Failed startup must not report started")
	}
	if !errors.Is(g.Err(), boom) {
		t.Fatalf("Expected startup error, got %v", g.Err())
	}

	g.Close()
	if len(journal) != 0 {
		t.Fatalf("Failed startup must skip shutdown, got %v", journal)
	}
}

func TestGuard_HookRemovedBeforeShutdown(t *testing.T) {
	var journal []string
	sys := &hookedSubsystem{fakeSubsystem{name: "gfx", journal: &journal}}

	g := Start(sys, WithoutBackgroundWorker())
	g.Close()

	want := []string{"startup gfx", "install-hook gfx", "remove-hook gfx", "shutdown gfx"}
	if len(journal) != len(want) {
		t.Fatalf("Expected %v, got %v", want, journal)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, journal)
		}
	}
}

func TestGuard_NoHookWithoutOption(t *testing.T) {
	var journal []string
	sys := &hookedSubsystem{fakeSubsystem{name: "gfx", journal: &journal}}

	g := Start(sys)
	g.Close()

	want := []string{"startup gfx", "shutdown gfx"}
	if len(journal) != len(want) {
		t.Fatalf("Expected %v, got %v", want, journal)
	}
}

func TestGuard_OptionIgnoredForPlainSubsystem(t *testing.T) {
	var journal []string
	g := Start(&fakeSubsystem{name: "ole", journal: &journal}, WithoutBackgroundWorker())
	g.Close()

	want := []string{"startup ole", "shutdown ole"}
	if len(journal) != len(want) {
		t.Fatalf("Expected %v, got %v", want, journal)
	}
}

func TestStack_ReverseOrderShutdown(t *testing.T) {
	var journal []string
	var s Stack

	s.Start(&fakeSubsystem{name: "compose", journal: &journal})
	s.Start(&fakeSubsystem{name: "ole", journal: &journal})
	s.Start(&hookedSubsystem{fakeSubsystem{name: "gfx", journal: &journal}}, WithoutBackgroundWorker())

	if s.Err() != nil {
		t.Fatalf("Unexpected startup error: %v", s.Err())
	}

	s.Close()

	want := []string{
		"startup compose",
		"startup ole",
		"startup gfx", "install-hook gfx",
		"remove-hook gfx", "shutdown gfx",
		"shutdown ole",
		"shutdown compose",
	}
	if len(journal) != len(want) {
		t.Fatalf("Expected %v, got %v", want, journal)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, journal)
		}
	}
}

func TestStack_AggregatesStartupErrors(t *testing.T) {
	var journal []string
	var s Stack

	s.Start(&fakeSubsystem{name: "compose", journal: &journal})
	s.Start(&fakeSubsystem{name: "ole", journal: &journal, startupErr: errors.New("busy")})
	defer s.Close()

	err := s.Err()
	if err == nil {
		t.Fatal("Expected an aggregated startup error")
	}
}
