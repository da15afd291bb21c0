// Package effects holds the decorative strip animations and the
// auto-cycle scheduler that round-robins between them. Every effect is a
// non-blocking state machine driven by an injected millisecond clock,
// like the flight simulation in package blinky.
package effects

import "github.com/johncohn/alia-blinky/blinky"

// Effect is one strip animation. Start anchors its timers; Tick renders
// one frame and reports whether the effect has finished its run.
type Effect interface {
	Name() string
	Start(now int64)
	Tick(now int64, frame blinky.FrameSink, nav blinky.NavSink) (bool, error)
}

// Interruptible is implemented by effects that can be cancelled mid-run,
// resetting their state without claiming completion. The flight
// simulation is the one such effect.
type Interruptible interface {
	RequestAbort()
}
