package physics

import (
	"math"
	"time"

	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

// frictionRestVelocity is the speed below which a coast counts as stopped.
const frictionRestVelocity = 1.0

// Compile-time check that Friction implements sheet.Simulation.
var _ sheet.Simulation = Friction{}

// Friction coasts from a starting offset with exponentially decaying
// velocity: v(t) = v0 * exp(-t/tau). The position converges on
// from + v0*tau, which Project returns directly.
type Friction struct {
	from float64
	v0   float64
	tau  float64
}

// NewFriction returns a friction coast with the given time constant in
// seconds. Non-positive time constants are clamped to a near-instant stop.
func NewFriction(from, velocity, timeConstant float64) Friction {
	if timeConstant <= 0 {
		timeConstant = 0.001
	}
	return Friction{from: from, v0: velocity, tau: timeConstant}
}

// Position implements sheet.Simulation.
func (f Friction) Position(elapsed time.Duration) float64 {
	return f.from + f.v0*f.tau*(1-math.Exp(-elapsed.Seconds()/f.tau))
}

// Velocity implements sheet.Simulation.
func (f Friction) Velocity(elapsed time.Duration) float64 {
	return f.v0 * math.Exp(-elapsed.Seconds()/f.tau)
}

// Done implements sheet.Simulation.
func (f Friction) Done(elapsed time.Duration) bool {
	return math.Abs(f.Velocity(elapsed)) < frictionRestVelocity
}

// Project returns the offset the coast converges to.
func (f Friction) Project() float64 { return f.from + f.v0*f.tau }
