package blinky

// Flight phase durations and internal split points, in milliseconds.
const (
	LiftDuration         = 5000
	TransitionInHold     = 3000 // max-speed hold before decelerating
	TransitionInDuration = 8000 // hold + 5000ms deceleration
	ConventionalDuration = 5000
	LandingSpinUp        = 5000
	LandingHoldEnd       = 8000 // spin-up + 3000ms hold
	LandingDuration      = 13000
	GroundPauseDuration  = 5000

	// CycleDuration is one full lift-to-ground run.
	CycleDuration = LiftDuration + TransitionInDuration + ConventionalDuration +
		LandingDuration + GroundPauseDuration // 36000
)

// Parked blade positions. Props 0 and 2 rest on ring cells {0,4}, props
// 1 and 3 on {8,4}. The asymmetry matches the installed hardware; do not
// symmetrize it.
var parkedCells = [NumProps][2]int{
	{0, 4},
	{8, 4},
	{0, 4},
	{8, 4},
}

// Sequencer runs the multi-phase flight simulation: eased spin-up through
// vertical lift, a max-speed hold with deceleration into conventional
// flight, a landing with spin-up/hold/spin-down, and a ground pause. It is
// a non-blocking state machine: Tick never sleeps and must be called every
// few milliseconds by the outer scheduler.
type Sequencer struct {
	phase        Phase
	phaseStarted int64

	props [NumProps]propRotor
	tail  tailRotor

	propPeriod int64 // shared across the four props
	tailPeriod int64

	brightness uint8
	abort      bool
}

// NewSequencer returns a sequencer in its initial (pre-lift) state.
// Start must be called once before the first Tick.
func NewSequencer(brightness uint8) *Sequencer {
	s := &Sequencer{brightness: brightness}
	for i := range s.props {
		s.props[i].dir = 1
	}
	// Outboard props counter-rotate against the inboard pair.
	s.props[0].dir = -1
	s.props[3].dir = -1
	return s
}

// Start anchors all timers at now. Calling it again restarts the cycle.
func (s *Sequencer) Start(now int64) { s.Reset(now) }

// Reset returns the sequencer to the top of the lift phase with all
// rotors parked and zeroed.
func (s *Sequencer) Reset(now int64) {
	s.phase = Lift
	s.phaseStarted = now
	for i := range s.props {
		s.props[i].reset(now)
	}
	s.tail.reset(now)
	s.propPeriod = MaxPropPeriod
	s.tailPeriod = VerySlowTailPeriod
}

// RequestAbort asks the sequencer to give up its current run. The flag is
// consumed by the next Tick, which resets all state and reports not
// complete. The sequencer never aborts itself.
func (s *Sequencer) RequestAbort() { s.abort = true }

// Phase reports the current flight phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// Name implements the effect contract used by the outer scheduler.
func (s *Sequencer) Name() string { return "flight-sim" }

// Tick advances the simulation to time now, renders one frame into frame,
// requests the nav-light mode, and reports whether a full cycle finished
// this tick. A pending abort overrides everything: state resets and the
// tick reports not complete.
func (s *Sequencer) Tick(now int64, frame FrameSink, nav NavSink) (bool, error) {
	complete := s.updatePhase(now)
	s.advanceRotors(now)
	s.render(frame)
	err := frame.Commit()
	nav.SetMode(NavBlinking)

	if s.abort {
		s.Reset(now)
		s.abort = false
		return false, err
	}
	return complete, err
}

// updatePhase recomputes the rotor periods for the current phase and
// advances to the next phase when the elapsed-time threshold is reached.
// Returns true only on the GroundPause -> Lift wrap, the single transition
// that counts as cycle completion.
func (s *Sequencer) updatePhase(now int64) bool {
	elapsed := now - s.phaseStarted
	if elapsed < 0 {
		elapsed = 0
	}

	switch s.phase {
	case Lift:
		// Eased spin-up from parked to full speed; tail barely turning.
		progress := clamp(float64(elapsed)/LiftDuration, 0, 1)
		s.propPeriod = clampPropPeriod(easePeriod(progress))
		s.tailPeriod = VerySlowTailPeriod
		if elapsed >= LiftDuration {
			s.enterPhase(TransitionIn, now)
			s.propPeriod = MinPropPeriod
		}

	case TransitionIn:
		// Hold at full speed, then run the easing curve in reverse so the
		// props stay fast for most of the window and drop off at the end.
		if elapsed <= TransitionInHold {
			s.propPeriod = MinPropPeriod
		} else {
			decel := clamp(float64(elapsed-TransitionInHold)/(TransitionInDuration-TransitionInHold), 0, 1)
			s.propPeriod = clampPropPeriod(easePeriod(1 - decel))
		}
		s.tailPeriod = MinTailPeriod
		if elapsed >= TransitionInDuration {
			s.enterPhase(Conventional, now)
			s.propPeriod = MaxPropPeriod
		}

	case Conventional:
		// Wing-borne flight: props parked, tail at its fastest.
		s.tailPeriod = ConventionalTailPeriod
		if elapsed >= ConventionalDuration {
			s.enterPhase(Landing, now)
			// Starting point for the landing phase's gradual tail decel.
			s.tailPeriod = MinTailPeriod
		}

	case Landing:
		// Props spin up, hold, and spin down again. The tail decelerates
		// one millisecond per advance for the whole phase (see
		// advanceRotors).
		switch {
		case elapsed < LandingSpinUp:
			accel := clamp(float64(elapsed)/LandingSpinUp, 0, 1)
			s.propPeriod = clampPropPeriod(easePeriod(accel))
		case elapsed < LandingHoldEnd:
			s.propPeriod = MinPropPeriod
		default:
			decel := clamp(float64(elapsed-LandingHoldEnd)/(LandingDuration-LandingHoldEnd), 0, 1)
			s.propPeriod = clampPropPeriod(easePeriod(1 - decel))
		}
		if elapsed >= LandingDuration {
			s.enterPhase(GroundPause, now)
			s.propPeriod = MaxPropPeriod
		}

	case GroundPause:
		s.tailPeriod = VerySlowTailPeriod
		if elapsed >= GroundPauseDuration {
			s.Reset(now)
			return true
		}
	}
	return false
}

func (s *Sequencer) enterPhase(p Phase, now int64) {
	s.phase = p
	s.phaseStarted = now
}

// advanceRotors steps each rotor whose own period has elapsed. Props do
// not turn during conventional flight. During landing the tail period
// grows by 1ms per tail advance, capped at MaxTailPeriod.
func (s *Sequencer) advanceRotors(now int64) {
	if s.phase != Conventional {
		for i := range s.props {
			s.props[i].advance(now, s.propPeriod)
		}
	}
	if s.tail.advance(now, s.tailPeriod) && s.phase == Landing {
		if s.tailPeriod < MaxTailPeriod {
			s.tailPeriod++
		}
	}
}

// render writes the composed frame: two blade cells per prop (rotating
// while spinning, fixed while parked) and one tail cell, all in the
// shared pattern color.
func (s *Sequencer) render(frame FrameSink) {
	frame.Clear()
	c := Grey(s.brightness)
	for i := range s.props {
		base := i * PropRingSize
		if s.spinning() {
			a := s.props[i].angle
			frame.SetPixel(base+a, c)
			frame.SetPixel(base+(a+4)%PropRingSize, c)
		} else {
			frame.SetPixel(base+parkedCells[i][0], c)
			frame.SetPixel(base+parkedCells[i][1], c)
		}
	}
	frame.SetPixel(TailOffset+s.tail.position, c)
}

// spinning reports whether the props render the rotating blade pattern.
// Strictly faster than parked speed is required: a prop sitting exactly
// at MaxPropPeriod renders parked.
func (s *Sequencer) spinning() bool {
	return s.phase != Conventional && s.propPeriod < MaxPropPeriod
}

func clampPropPeriod(p int64) int64 {
	return clamp(p, MinPropPeriod, MaxPropPeriod)
}
