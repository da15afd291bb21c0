//go:build rp2040

package main

import (
	"image/color"
	"machine"
	"strconv"
	"strings"

	"tinygo.org/x/drivers/ws2812"

	"github.com/johncohn/alia-blinky/blinky"
)

// Strip drives the 41-pixel WS2812 chain. It stages a frame in memory and
// pushes the whole buffer on Commit.
type Strip struct {
	dev ws2812.Device
	buf [blinky.NumPixels]color.RGBA
}

// NewStrip configures the data pin and returns a ready strip.
func NewStrip(pin machine.Pin) *Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Strip{dev: ws2812.New(pin)}
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

// Commit implements blinky.FrameSink.
func (s *Strip) Commit() error {
	return s.dev.WriteColors(s.buf[:])
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
