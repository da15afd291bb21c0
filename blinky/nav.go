package blinky

// DefaultNavBlinkPeriod is the on/off half-period for blinking mode.
const DefaultNavBlinkPeriod = 500

// NavBlinker computes the navigation-light output without blocking. It
// implements NavSink so effects can request a mode, and the hardware
// target polls Lit each loop to drive the pins. In solid mode the lights
// are simply on.
type NavBlinker struct {
	mode       NavMode
	period     int64
	on         bool
	lastToggle int64
}

// NewNavBlinker returns a blinker toggling every period milliseconds when
// in blinking mode. A period of 0 uses DefaultNavBlinkPeriod.
func NewNavBlinker(period int64) *NavBlinker {
	if period <= 0 {
		period = DefaultNavBlinkPeriod
	}
	return &NavBlinker{period: period, on: true}
}

// SetMode implements NavSink.
func (n *NavBlinker) SetMode(m NavMode) { n.mode = m }

// Mode reports the currently requested mode.
func (n *NavBlinker) Mode() NavMode { return n.mode }

// Lit advances the blink state to now and reports whether the lights
// should currently be on. Non-monotonic clock readings leave the state
// unchanged.
func (n *NavBlinker) Lit(now int64) bool {
	if n.mode == NavSolid {
		return true
	}
	if now >= n.lastToggle && now-n.lastToggle >= n.period {
		n.on = !n.on
		n.lastToggle = now
	}
	return n.on
}
