package blinky

import "testing"

func TestEasePeriodEndpoints(t *testing.T) {
	if got := easePeriod(0); got != MaxPropPeriod {
		t.Errorf("easePeriod(0) = %d, want %d", got, int64(MaxPropPeriod))
	}
	if got := easePeriod(1); got != MinPropPeriod {
		t.Errorf("easePeriod(1) = %d, want %d", got, int64(MinPropPeriod))
	}
}

func TestEasePeriodCurveValues(t *testing.T) {
	// period = 500 - progress^2 * 490, truncated to whole milliseconds.
	tests := []struct {
		progress float64
		want     int64
	}{
		{0.25, 469}, // 500 - 0.0625*490 = 469.375
		{0.5, 377},  // 500 - 0.25*490  = 377.5
		{0.75, 224}, // 500 - 0.5625*490 = 224.375
	}
	for _, test := range tests {
		if got := easePeriod(test.progress); got != test.want {
			t.Errorf("easePeriod(%v) = %d, want %d", test.progress, got, test.want)
		}
	}
}

func TestEasePeriodMonotonic(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	prev := easePeriod(steps[0])
	for _, p := range steps[1:] {
		got := easePeriod(p)
		if got >= prev {
			t.Errorf("easePeriod(%v) = %d, want < %d", p, got, prev)
		}
		prev = got
	}
}

func TestEasePeriodClampsProgress(t *testing.T) {
	if got := easePeriod(-0.5); got != MaxPropPeriod {
		t.Errorf("easePeriod(-0.5) = %d, want %d", got, int64(MaxPropPeriod))
	}
	if got := easePeriod(1.5); got != MinPropPeriod {
		t.Errorf("easePeriod(1.5) = %d, want %d", got, int64(MinPropPeriod))
	}
}

func TestEasePeriodQuadratic(t *testing.T) {
	// Halfway through the window the period should still be well above
	// the linear midpoint: the curve accelerates late.
	linearMid := int64((MaxPropPeriod + MinPropPeriod) / 2)
	if got := easePeriod(0.5); got <= linearMid {
		t.Errorf("easePeriod(0.5) = %d, want > %d (ease-in should lag a linear ramp)", got, linearMid)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int64
	}{
		{5, 10, 500, 10},
		{1000, 10, 500, 500},
		{42, 10, 500, 42},
		{10, 10, 500, 10},
		{500, 10, 500, 500},
	}
	for _, test := range tests {
		if got := clamp(test.v, test.lo, test.hi); got != test.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", test.v, test.lo, test.hi, got, test.want)
		}
	}
}

func TestMapRange(t *testing.T) {
	if got := mapRange(0.5, 0.0, 1.0, 0.0, 100.0); got != 50.0 {
		t.Errorf("mapRange(0.5, 0, 1, 0, 100) = %v, want 50", got)
	}
	if got := mapRange(5.0, 0.0, 10.0, 100.0, 0.0); got != 50.0 {
		t.Errorf("inverted mapRange = %v, want 50", got)
	}
}
