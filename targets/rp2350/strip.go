//go:build rp2350

package main

import (
	"image/color"
	"machine"
	"strconv"
	"strings"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"github.com/johncohn/alia-blinky/blinky"
)

// Strip drives the 41-pixel WS2812B chain through a PIO state machine,
// leaving the CPU free for the animation loop.
type Strip struct {
	ws  *piolib.WS2812B
	buf [blinky.NumPixels]color.RGBA
}

// NewStrip claims a PIO state machine and binds it to the data pin.
func NewStrip(pin machine.Pin) (*Strip, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &Strip{ws: ws}, nil
}

// SetPixel implements blinky.FrameSink.
func (s *Strip) SetPixel(i int, c color.RGBA) {
	if i >= 0 && i < blinky.NumPixels {
		s.buf[i] = c
	}
}

// Clear implements blinky.FrameSink.
func (s *Strip) Clear() {
	s.buf = [blinky.NumPixels]color.RGBA{}
}

// Commit implements blinky.FrameSink. The PIO FIFO paces the writes; the
// idle gap before the next frame latches the strip.
func (s *Strip) Commit() error {
	for _, c := range s.buf {
		s.ws.PutColor(c)
	}
	return nil
}

// pinByName maps a config pin name like "gpio16" to the machine pin.
// Unknown names fall back to gpio16.
func pinByName(name string) machine.Pin {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(name), "gpio"))
	if err != nil || n < 0 || n > 29 {
		return machine.GPIO16
	}
	return machine.Pin(n)
}
