// Package subsystem guards process-wide subsystem lifetimes.
//
// A Guard pairs one subsystem's startup with its matching shutdown,
// run exactly once. Guards are not reusable or reentrant: constructing
// a second guard for a subsystem that already has a live one is
// undefined by contract, and callers avoid it by keeping the guard a
// single scope-local value at process start-up.
//
// Some subsystems spin up a background worker thread at startup. When
// the guard is constructed during very early process start-up that
// worker can race with early inter-process messaging and cause spurious
// timeouts; WithoutBackgroundWorker suppresses it and installs the
// subsystem's notification hook instead, which the guard removes
// strictly before shutdown.
//
// Stack starts several subsystems in order and shuts them down in
// strict reverse order, the usual composition at process start-up.
package subsystem
