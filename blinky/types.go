// Package blinky implements the animation core for the alia-blinky light
// controller: a fixed strip of 41 WS2812 LEDs arranged as four 9-LED prop
// rings and one 5-LED tail ring, plus three discrete navigation lights.
//
// Everything in this package is pure Go with no hardware imports. Time is
// an int64 millisecond count from an injected monotonic clock, so the whole
// package runs and tests on the host; the targets/ mains supply the real
// strip, pins and clock.
package blinky

import "image/color"

// Strip topology. The layout is fixed at build time: prop i occupies
// indices [9i, 9i+8], the tail occupies [36, 40].
const (
	NumProps     = 4
	PropRingSize = 9
	TailRingSize = 5
	NumPixels    = NumProps*PropRingSize + TailRingSize // 41
	TailOffset   = NumProps * PropRingSize              // 36
)

// FrameSink receives one frame per tick. Implementations: the ws2812
// strip on hardware targets, a serial or terminal strip on the host, and
// a recording fake in tests.
type FrameSink interface {
	// SetPixel stages a color for pixel i (0..NumPixels-1).
	SetPixel(i int, c color.RGBA)
	// Clear stages black on every pixel.
	Clear()
	// Commit pushes the staged frame to the device.
	Commit() error
}

// NavMode selects how the navigation lights behave while an effect runs.
type NavMode uint8

const (
	NavSolid NavMode = iota
	NavBlinking
)

// NavSink is the navigation-light driver boundary. Effects request a mode
// every tick; the driver owns the actual toggling.
type NavSink interface {
	SetMode(NavMode)
}

// Phase is one stage of the flight simulation. Phases advance strictly in
// order and wrap from GroundPause back to Lift.
type Phase uint8

const (
	Lift Phase = iota
	TransitionIn
	Conventional
	Landing
	GroundPause
)

func (p Phase) String() string {
	switch p {
	case Lift:
		return "lift"
	case TransitionIn:
		return "transition-in"
	case Conventional:
		return "conventional"
	case Landing:
		return "landing"
	case GroundPause:
		return "ground-pause"
	}
	return "unknown"
}

// Grey returns the shared "normal" pattern color: white at the given
// brightness.
func Grey(brightness uint8) color.RGBA {
	return color.RGBA{R: brightness, G: brightness, B: brightness, A: 255}
}
