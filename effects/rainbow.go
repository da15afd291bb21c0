package effects

import (
	"image/color"

	"github.com/johncohn/alia-blinky/blinky"
)

// Rainbow sweeps a full hue wheel across the strip, shifting the wheel
// one step per frame.
type Rainbow struct {
	brightness  uint8
	duration    int64
	framePeriod int64

	startedAt int64
	lastFrame int64
	offset    uint8
}

// NewRainbow returns a rainbow sweep that runs for duration milliseconds,
// advancing the wheel every framePeriod milliseconds.
func NewRainbow(brightness uint8, duration, framePeriod int64) *Rainbow {
	return &Rainbow{brightness: brightness, duration: duration, framePeriod: framePeriod}
}

func (r *Rainbow) Name() string { return "rainbow" }

func (r *Rainbow) Start(now int64) {
	r.startedAt = now
	r.lastFrame = now
	r.offset = 0
}

func (r *Rainbow) Tick(now int64, frame blinky.FrameSink, nav blinky.NavSink) (bool, error) {
	if now >= r.lastFrame && now-r.lastFrame >= r.framePeriod {
		r.offset++
		r.lastFrame = now
	}
	for i := 0; i < blinky.NumPixels; i++ {
		frame.SetPixel(i, scale(wheel(uint8(i*256/blinky.NumPixels)+r.offset), r.brightness))
	}
	err := frame.Commit()
	nav.SetMode(blinky.NavBlinking)
	return now-r.startedAt >= r.duration, err
}

// wheel maps 0..255 onto a red-green-blue color circle at full intensity.
func wheel(pos uint8) color.RGBA {
	switch {
	case pos < 85:
		return color.RGBA{R: 255 - pos*3, G: pos * 3, A: 255}
	case pos < 170:
		pos -= 85
		return color.RGBA{G: 255 - pos*3, B: pos * 3, A: 255}
	default:
		pos -= 170
		return color.RGBA{B: 255 - pos*3, R: pos * 3, A: 255}
	}
}

// scale dims a full-intensity color to the configured brightness.
func scale(c color.RGBA, brightness uint8) color.RGBA {
	b := uint16(brightness)
	return color.RGBA{
		R: uint8(uint16(c.R) * b / 255),
		G: uint8(uint16(c.G) * b / 255),
		B: uint8(uint16(c.B) * b / 255),
		A: 255,
	}
}
