// Package strip provides host-side frame sinks: a serial bridge that
// streams frames to a microcontroller relaying them onto a real WS2812
// chain, and an ANSI terminal renderer for running without hardware.
package strip

import (
	"image/color"
	"io"

	"github.com/johncohn/alia-blinky/blinky"
)

// frameHeader marks the start of a frame on the wire. The bridge resets
// its write cursor whenever it sees it.
const frameHeader = 0x84

// FrameSize is the wire size of one frame: header plus one GRB triplet
// per pixel.
const FrameSize = 1 + blinky.NumPixels*3

// SerialStrip streams frames over a serial port. Each Commit writes one
// complete frame: the header byte followed by 41 GRB triplets.
type SerialStrip struct {
	w   io.Writer
	buf [FrameSize]byte
}

// NewSerialStrip returns a strip writing frames to w.
func NewSerialStrip(w io.Writer) *SerialStrip {
	s := &SerialStrip{w: w}
	s.buf[0] = frameHeader
	return s
}

// SetPixel implements blinky.FrameSink.
func (s *SerialStrip) SetPixel(i int, c color.RGBA) {
	if i < 0 || i >= blinky.NumPixels {
		return
	}
	off := 1 + i*3
	s.buf[off] = c.G
	s.buf[off+1] = c.R
	s.buf[off+2] = c.B
}

// Clear implements blinky.FrameSink.
func (s *SerialStrip) Clear() {
	for i := 1; i < FrameSize; i++ {
		s.buf[i] = 0
	}
}

// Commit implements blinky.FrameSink.
func (s *SerialStrip) Commit() error {
	_, err := s.w.Write(s.buf[:])
	return err
}
