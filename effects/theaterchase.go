package effects

import "github.com/johncohn/alia-blinky/blinky"

// TheaterChase lights every third pixel and walks the pattern one step
// per frame, marquee style.
type TheaterChase struct {
	brightness  uint8
	duration    int64
	framePeriod int64

	startedAt int64
	lastFrame int64
	step      int
}

// NewTheaterChase returns a chase running for duration milliseconds with
// one pattern step every framePeriod milliseconds.
func NewTheaterChase(brightness uint8, duration, framePeriod int64) *TheaterChase {
	return &TheaterChase{brightness: brightness, duration: duration, framePeriod: framePeriod}
}

func (t *TheaterChase) Name() string { return "theater-chase" }

func (t *TheaterChase) Start(now int64) {
	t.startedAt = now
	t.lastFrame = now
	t.step = 0
}

func (t *TheaterChase) Tick(now int64, frame blinky.FrameSink, nav blinky.NavSink) (bool, error) {
	if now >= t.lastFrame && now-t.lastFrame >= t.framePeriod {
		t.step = (t.step + 1) % 3
		t.lastFrame = now
	}
	frame.Clear()
	c := blinky.Grey(t.brightness)
	for i := t.step; i < blinky.NumPixels; i += 3 {
		frame.SetPixel(i, c)
	}
	err := frame.Commit()
	// White pattern: solid nav lights.
	nav.SetMode(blinky.NavSolid)
	return now-t.startedAt >= t.duration, err
}
