package subsystem

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/wippyai/scoped/internal/nocopy"
)

// Stack starts subsystems in order and shuts them down in strict
// reverse order of acquisition.
type Stack struct {
	noCopy nocopy.Marker
	guards []*Guard
}

// Start starts sys, records its guard on the stack, and returns it.
func (s *Stack) Start(sys Subsystem, opts ...Option) *Guard {
	g := Start(sys, opts...)
	s.guards = append(s.guards, g)
	return g
}

// Err aggregates the startup errors of every guard on the stack.
func (s *Stack) Err() error {
	var err error
	for _, g := range s.guards {
		if g.err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", g.sys.Name(), g.err))
		}
	}
	return err
}

// Close shuts the subsystems down last-started first. Guards whose
// startup failed are skipped by their own Close.
func (s *Stack) Close() {
	for i := len(s.guards) - 1; i >= 0; i-- {
		s.guards[i].Close()
	}
	s.guards = nil
}
