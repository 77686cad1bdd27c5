package subsystem

import (
	"go.uber.org/zap"

	"github.com/wippyai/scoped/internal/nocopy"
)

// Token is the status token a subsystem returns from Startup and
// expects back at Shutdown.
type Token uintptr

// HookToken identifies an installed notification hook.
type HookToken uintptr

// Subsystem is the lifecycle contract of one process-wide subsystem.
type Subsystem interface {
	// Name identifies the subsystem in logs.
	Name() string

	// Startup initializes the subsystem and returns its status token.
	Startup() (Token, error)

	// Shutdown tears the subsystem down. It is called at most once,
	// with the token Startup returned.
	Shutdown(Token)
}

// Hooker is implemented by subsystems that can run without their
// background worker, delivering notifications through a hook instead.
type Hooker interface {
	// InstallHook installs the notification hook and returns its token.
	InstallHook() HookToken

	// RemoveHook removes a previously installed hook.
	RemoveHook(HookToken)
}

type state uint8

const (
	stateUninitialized state = iota
	stateStarted
	stateHookInstalled
	stateShuttingDown
	stateTerminated
)

// Option configures a Guard at construction.
type Option func(*config)

type config struct {
	noWorker bool
}

// WithoutBackgroundWorker suppresses the subsystem's background worker
// thread and installs its notification hook for the guard's lifetime.
// Only meaningful for subsystems implementing Hooker, and only needed
// when the guard is constructed during very early process start-up.
func WithoutBackgroundWorker() Option {
	return func(c *config) {
		c.noWorker = true
	}
}

// Guard ties one subsystem's startup to its matching shutdown.
type Guard struct {
	noCopy nocopy.Marker
	sys    Subsystem
	token  Token
	hook   HookToken
	err    error
	st     state
}

// Start performs the subsystem's startup and returns the guard whose
// Close performs the matching shutdown. A startup failure is recorded
// on the guard rather than propagated: the guard stays inert, Close is
// a no-op, and Err reports what happened.
func Start(sys Subsystem, opts ...Option) *Guard {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Guard{sys: sys}
	token, err := sys.Startup()
	if err != nil {
		g.err = err
		Logger().Warn("subsystem startup failed",
			zap.String("subsystem", sys.Name()),
			zap.Error(err))
		return g
	}
	g.token = token
	g.st = stateStarted

	if cfg.noWorker {
		if h, ok := sys.(Hooker); ok {
			g.hook = h.InstallHook()
			g.st = stateHookInstalled
		}
	}

	Logger().Debug("subsystem started",
		zap.String("subsystem", sys.Name()),
		zap.Bool("background_worker_suppressed", g.st == stateHookInstalled))
	return g
}

// Err returns the startup error, if any.
func (g *Guard) Err() error {
	return g.err
}

// Started reports whether the subsystem's startup succeeded and the
// shutdown has not run yet.
func (g *Guard) Started() bool {
	return g.st == stateStarted || g.st == stateHookInstalled
}

// Close removes the notification hook, if one was installed, then shuts
// the subsystem down, in that order, exactly once. Closing a guard
// whose startup failed does nothing.
func (g *Guard) Close() {
	switch g.st {
	case stateUninitialized, stateShuttingDown, stateTerminated:
		return
	}

	if g.st == stateHookInstalled {
		g.sys.(Hooker).RemoveHook(g.hook)
	}
	g.st = stateShuttingDown
	g.sys.Shutdown(g.token)
	g.st = stateTerminated

	Logger().Debug("subsystem shut down", zap.String("subsystem", g.sys.Name()))
}
