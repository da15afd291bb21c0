package effects

import "github.com/johncohn/alia-blinky/blinky"

// AutoCycle round-robins a fixed list of effects. The active effect is
// ticked until it reports completion, then the next one starts. Only one
// effect ever writes to the frame sink in a given tick.
type AutoCycle struct {
	effects []Effect
	active  int

	started     bool
	switchAfter bool // advance after the next tick, set by Interrupt
}

// NewAutoCycle builds a scheduler over the given effects, in play order.
func NewAutoCycle(effects ...Effect) *AutoCycle {
	return &AutoCycle{effects: effects}
}

// Active returns the effect currently holding the strip.
func (a *AutoCycle) Active() Effect {
	return a.effects[a.active]
}

// Interrupt requests a switch away from the active effect. If the effect
// supports cooperative cancellation its abort flag is raised so its next
// tick resets cleanly; either way the scheduler advances after that tick.
func (a *AutoCycle) Interrupt() {
	if in, ok := a.effects[a.active].(Interruptible); ok {
		in.RequestAbort()
	}
	a.switchAfter = true
}

// Tick drives the active effect once and handles rotation. The first call
// starts the first effect.
func (a *AutoCycle) Tick(now int64, frame blinky.FrameSink, nav blinky.NavSink) error {
	if len(a.effects) == 0 {
		return nil
	}
	if !a.started {
		a.effects[a.active].Start(now)
		a.started = true
	}

	done, err := a.effects[a.active].Tick(now, frame, nav)
	if err != nil {
		return err
	}

	if done || a.switchAfter {
		a.switchAfter = false
		a.active = (a.active + 1) % len(a.effects)
		a.effects[a.active].Start(now)
	}
	return nil
}
