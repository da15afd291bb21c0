package strip

import (
	"fmt"
	"image/color"
	"io"

	"github.com/johncohn/alia-blinky/blinky"
)

// TermStrip renders frames as a single line of true-color blocks,
// redrawn in place. Useful for previewing the animations without any
// hardware attached.
type TermStrip struct {
	w   io.Writer
	buf [blinky.NumPixels]color.RGBA
}

// NewTermStrip returns a strip rendering to w (normally os.Stdout).
func NewTermStrip(w io.Writer) *TermStrip {
	return &TermStrip{w: w}
}

// SetPixel implements blinky.FrameSink.
func (t *TermStrip) SetPixel(i int, c color.RGBA) {
	if i >= 0 && i < blinky.NumPixels {
		t.buf[i] = c
	}
}

// Clear implements blinky.FrameSink.
func (t *TermStrip) Clear() {
	t.buf = [blinky.NumPixels]color.RGBA{}
}

// Commit implements blinky.FrameSink.
func (t *TermStrip) Commit() error {
	if _, err := fmt.Fprint(t.w, "\r"); err != nil {
		return err
	}
	for i, c := range t.buf {
		// Gaps between the logical groups: prop|prop|prop|prop|tail.
		if i > 0 && i%blinky.PropRingSize == 0 && i <= blinky.TailOffset {
			if _, err := fmt.Fprint(t.w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(t.w, "\x1b[48;2;%d;%d;%dm ", c.R, c.G, c.B); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(t.w, "\x1b[0m")
	return err
}
