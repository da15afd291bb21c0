//go:build rp2040

package main

import (
	"machine"

	"github.com/johncohn/alia-blinky/blinky"
)

// NavLights drives the three discrete navigation-light outputs from the
// shared blink state. Effects request a mode through SetMode; the main
// loop calls Update once per pass to refresh the pins.
type NavLights struct {
	pins    [3]machine.Pin
	blinker *blinky.NavBlinker
}

func NewNavLights(pins [3]machine.Pin, blinkPeriodMs int64) *NavLights {
	for _, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return &NavLights{pins: pins, blinker: blinky.NewNavBlinker(blinkPeriodMs)}
}

// SetMode implements blinky.NavSink.
func (n *NavLights) SetMode(m blinky.NavMode) {
	n.blinker.SetMode(m)
}

// Update refreshes the pins for time now.
func (n *NavLights) Update(now int64) {
	lit := n.blinker.Lit(now)
	for _, p := range n.pins {
		if lit {
			p.High()
		} else {
			p.Low()
		}
	}
}
