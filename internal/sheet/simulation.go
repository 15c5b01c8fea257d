// internal/sheet/simulation.go
package sheet

import "time"

// Simulation describes ballistic motion as a function of the time elapsed
// since the motion started. Implementations are queried with monotonically
// non-decreasing elapsed values, once per host tick.
type Simulation interface {
	// Position returns the offset at elapsed time.
	Position(elapsed time.Duration) float64
	// Velocity returns the velocity at elapsed time, in offset units per
	// second.
	Velocity(elapsed time.Duration) float64
	// Done reports whether the motion has come to rest at elapsed time.
	Done(elapsed time.Duration) bool
}

// Curve shapes a timed animation by remapping normalized time. A curve
// maps t in [0, 1] to eased progress with Curve(0) == 0 and Curve(1) == 1.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// EaseIn starts slow and accelerates.
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut starts fast and decelerates.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

// EaseOutCubic decelerates harder than EaseOut.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through the
// second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
