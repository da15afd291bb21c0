package blinky

import "golang.org/x/exp/constraints"

// Rotor period bounds, in milliseconds between successive position
// advances. Period is inversely proportional to simulated rotor speed.
const (
	MinPropPeriod = 10  // full speed
	MaxPropPeriod = 500 // parked
	MinTailPeriod = 50
	MaxTailPeriod = 200

	// Fixed tail periods outside the clamped range: near-stopped on the
	// ground, fastest of all phases in conventional flight.
	VerySlowTailPeriod     = 400
	ConventionalTailPeriod = 30
)

// easePeriod maps normalized spin-up progress to a prop update period.
// Quadratic ease-in: the period starts at MaxPropPeriod and falls to
// MinPropPeriod with the rate of change accelerating as progress grows,
// so the simulated blades spend most of the window at high speed.
func easePeriod(progress float64) int64 {
	progress = clamp(progress, 0, 1)
	curved := progress * progress
	return int64(mapRange(curved, 0, 1, MaxPropPeriod, MinPropPeriod))
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapRange maps value from one range onto another.
func mapRange[T constraints.Float](value, fromMin, fromMax, toMin, toMax T) T {
	return (value-fromMin)/(fromMax-fromMin)*(toMax-toMin) + toMin
}
