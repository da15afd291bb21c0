package blinky

// propRotor tracks one prop's blade position on its 9-cell ring.
// Direction is a static property of the prop's position on the airframe:
// props 0 and 3 turn counter-clockwise (-1), props 1 and 2 clockwise (+1).
type propRotor struct {
	angle      int // [0, PropRingSize)
	dir        int // +1 or -1
	lastUpdate int64
}

// advance steps the blade position by one cell if the rotor's period has
// elapsed. A non-monotonic clock reading (now before lastUpdate) is
// ignored: the rotor simply does not advance this tick.
func (r *propRotor) advance(now, period int64) {
	if now < r.lastUpdate {
		return
	}
	if now-r.lastUpdate >= period {
		r.angle = (r.angle + r.dir + PropRingSize) % PropRingSize
		r.lastUpdate = now
	}
}

func (r *propRotor) reset(now int64) {
	r.angle = 0
	r.lastUpdate = now
}

// tailRotor tracks the single lit cell on the 5-cell tail ring. The tail
// always turns in the positive direction.
type tailRotor struct {
	position   int // [0, TailRingSize)
	lastUpdate int64
}

// advance steps the tail position if its period has elapsed and reports
// whether it moved. The caller uses the report to apply the landing
// phase's per-step deceleration.
func (r *tailRotor) advance(now, period int64) bool {
	if now < r.lastUpdate {
		return false
	}
	if now-r.lastUpdate >= period {
		r.position = (r.position + 1) % TailRingSize
		r.lastUpdate = now
		return true
	}
	return false
}

func (r *tailRotor) reset(now int64) {
	r.position = 0
	r.lastUpdate = now
}
