package effects

import (
	"testing"

	"github.com/johncohn/alia-blinky/blinky"
)

func TestRainbowCompletesAfterDuration(t *testing.T) {
	r := NewRainbow(64, 1000, 20)
	strip := &testStrip{}
	nav := &testNav{}
	r.Start(0)

	for now := int64(0); now < 1000; now += 20 {
		done, err := r.Tick(now, strip, nav)
		if err != nil {
			t.Fatalf("Tick(%d): %v", now, err)
		}
		if done {
			t.Fatalf("rainbow completed early at t=%d", now)
		}
	}
	done, err := r.Tick(1000, strip, nav)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !done {
		t.Error("rainbow did not complete at its duration")
	}
	if nav.mode != blinky.NavBlinking {
		t.Errorf("rainbow nav mode = %v, want NavBlinking", nav.mode)
	}
}

func TestRainbowLightsWholeStrip(t *testing.T) {
	r := NewRainbow(255, 1000, 20)
	strip := &testStrip{}
	r.Start(0)
	if _, err := r.Tick(0, strip, &testNav{}); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	for i := 0; i < blinky.NumPixels; i++ {
		c := strip.pixels[i]
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Errorf("pixel %d is dark during rainbow", i)
		}
	}
}

func TestWheelCoversPrimaries(t *testing.T) {
	tests := []struct {
		pos     uint8
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{85, 0, 255, 0},
		{170, 0, 0, 255},
	}
	for _, test := range tests {
		c := wheel(test.pos)
		if c.R != test.r || c.G != test.g || c.B != test.b {
			t.Errorf("wheel(%d) = %v, want {%d %d %d}", test.pos, c, test.r, test.g, test.b)
		}
	}
}

func TestScaleBrightness(t *testing.T) {
	c := scale(wheel(0), 128)
	if c.R != 128 || c.G != 0 || c.B != 0 {
		t.Errorf("scale(red, 128) = %v, want {128 0 0}", c)
	}
	c = scale(wheel(0), 0)
	if c.R != 0 {
		t.Errorf("scale(red, 0).R = %d, want 0", c.R)
	}
}

func TestTheaterChasePattern(t *testing.T) {
	tc := NewTheaterChase(50, 10000, 100)
	strip := &testStrip{}
	nav := &testNav{}
	tc.Start(0)

	for step := 0; step < 3; step++ {
		now := int64(step * 100)
		if _, err := tc.Tick(now, strip, nav); err != nil {
			t.Fatalf("Tick(%d): %v", now, err)
		}
		for i := 0; i < blinky.NumPixels; i++ {
			lit := strip.pixels[i].R != 0
			want := i%3 == tc.step
			if lit != want {
				t.Fatalf("step %d: pixel %d lit=%v, want %v", tc.step, i, lit, want)
			}
		}
	}
	if nav.mode != blinky.NavSolid {
		t.Errorf("theater chase nav mode = %v, want NavSolid", nav.mode)
	}
}

func TestRunningLightsCompletesAndStaysWhite(t *testing.T) {
	rl := NewRunningLights(100, 500, 50)
	strip := &testStrip{}
	nav := &testNav{}
	rl.Start(0)

	var done bool
	var err error
	for now := int64(0); now <= 500 && !done; now += 50 {
		done, err = rl.Tick(now, strip, nav)
		if err != nil {
			t.Fatalf("Tick(%d): %v", now, err)
		}
		for i := 0; i < blinky.NumPixels; i++ {
			c := strip.pixels[i]
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel %d not white: %v", i, c)
			}
		}
	}
	if !done {
		t.Error("running lights never completed")
	}
	if nav.mode != blinky.NavSolid {
		t.Errorf("running lights nav mode = %v, want NavSolid", nav.mode)
	}
}
