package effects

import (
	"math"

	"github.com/johncohn/alia-blinky/blinky"
)

// RunningLights sweeps a sine-shaped white pulse along the strip.
type RunningLights struct {
	brightness  uint8
	duration    int64
	framePeriod int64

	startedAt int64
	lastFrame int64
	position  int
}

// NewRunningLights returns a running-lights sweep over duration
// milliseconds, moving one pixel every framePeriod milliseconds.
func NewRunningLights(brightness uint8, duration, framePeriod int64) *RunningLights {
	return &RunningLights{brightness: brightness, duration: duration, framePeriod: framePeriod}
}

func (r *RunningLights) Name() string { return "running-lights" }

func (r *RunningLights) Start(now int64) {
	r.startedAt = now
	r.lastFrame = now
	r.position = 0
}

func (r *RunningLights) Tick(now int64, frame blinky.FrameSink, nav blinky.NavSink) (bool, error) {
	if now >= r.lastFrame && now-r.lastFrame >= r.framePeriod {
		r.position = (r.position + 1) % (blinky.NumPixels * 2)
		r.lastFrame = now
	}
	for i := 0; i < blinky.NumPixels; i++ {
		level := (math.Sin(float64(i+r.position)) + 1) / 2
		frame.SetPixel(i, blinky.Grey(uint8(level*float64(r.brightness))))
	}
	err := frame.Commit()
	// This is a white pattern, so the nav lights run solid.
	nav.SetMode(blinky.NavSolid)
	return now-r.startedAt >= r.duration, err
}
