package blinky

import "testing"

func TestPropRotorAdvanceAndWrap(t *testing.T) {
	r := propRotor{dir: 1}
	r.reset(0)

	// Period not yet elapsed: no movement.
	r.advance(5, 10)
	if r.angle != 0 {
		t.Fatalf("advanced too early: angle = %d", r.angle)
	}

	for i := 1; i <= PropRingSize; i++ {
		r.advance(int64(i*10), 10)
	}
	if r.angle != 0 {
		t.Errorf("after %d advances angle = %d, want 0 (full wrap)", PropRingSize, r.angle)
	}
}

func TestPropRotorCounterClockwiseWrap(t *testing.T) {
	r := propRotor{dir: -1}
	r.reset(0)
	r.advance(10, 10)
	if r.angle != PropRingSize-1 {
		t.Errorf("first ccw advance: angle = %d, want %d", r.angle, PropRingSize-1)
	}
}

func TestPropRotorNonMonotonicClock(t *testing.T) {
	r := propRotor{dir: 1}
	r.reset(100)
	r.advance(50, 10) // clock went backwards
	if r.angle != 0 || r.lastUpdate != 100 {
		t.Errorf("rotor state changed on non-monotonic clock: angle=%d lastUpdate=%d", r.angle, r.lastUpdate)
	}
}

func TestTailRotorAdvanceAndWrap(t *testing.T) {
	r := tailRotor{}
	r.reset(0)

	if r.advance(5, 10) {
		t.Fatal("advanced before period elapsed")
	}
	for i := 1; i <= TailRingSize; i++ {
		if !r.advance(int64(i*10), 10) {
			t.Fatalf("advance %d did not move", i)
		}
	}
	if r.position != 0 {
		t.Errorf("after %d advances position = %d, want 0 (full wrap)", TailRingSize, r.position)
	}
}

func TestTailRotorNonMonotonicClock(t *testing.T) {
	r := tailRotor{}
	r.reset(100)
	if r.advance(50, 10) {
		t.Error("tail advanced on non-monotonic clock")
	}
}
