package draw

import (
	"github.com/wippyai/scoped/internal/nocopy"
)

// SelectionGuard temporarily selects an object into a device context,
// restoring the previously selected object at Close.
type SelectionGuard struct {
	noCopy nocopy.Marker
	sys    System
	dc     Context
	prev   Object
}

// SelectInto selects obj into dc and records what was selected before.
func SelectInto(sys System, dc Context, obj Object) *SelectionGuard {
	prev := sys.Select(dc, obj)
	return &SelectionGuard{sys: sys, dc: dc, prev: prev}
}

// Prev returns the object that was selected before the guard took over.
func (g *SelectionGuard) Prev() Object {
	return g.prev
}

// Close re-selects the previous object. Further calls do nothing.
func (g *SelectionGuard) Close() {
	if g.sys == nil {
		return
	}
	sys := g.sys
	g.sys = nil
	sys.Select(g.dc, g.prev)
}
