// internal/physics/spring.go
package physics

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

// springFPS is the internal step rate of the harmonica spring. Queries
// between steps return the latest step, which at 120 steps per second is
// well under a cell of error.
const springFPS = 120

// Rest thresholds for spring completion.
const (
	springRestDistance = 0.05
	springRestVelocity = 0.5
)

// Compile-time check that Spring implements sheet.Simulation.
var _ sheet.Simulation = (*Spring)(nil)

// Spring simulates a damped harmonic spring from a starting offset and
// velocity toward a target offset.
//
// harmonica integrates the spring in fixed steps. Spring advances the
// integration lazily to cover each queried elapsed time; queries arrive in
// non-decreasing order from the controller, and a query for an earlier
// time restarts the integration from the initial conditions.
type Spring struct {
	spring harmonica.Spring
	target float64

	from float64
	v0   float64

	pos     float64
	vel     float64
	stepped int
}

// NewSpring returns a spring simulation. frequency is the angular
// frequency of the spring and damping its damping ratio, where 1 is
// critically damped.
func NewSpring(from, velocity, target, frequency, damping float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping),
		target: target,
		from:   from,
		v0:     velocity,
		pos:    from,
		vel:    velocity,
	}
}

// Target returns the offset the spring settles at.
func (s *Spring) Target() float64 { return s.target }

func (s *Spring) stepTo(elapsed time.Duration) {
	steps := int(elapsed.Seconds() * springFPS)
	if steps < s.stepped {
		s.pos, s.vel, s.stepped = s.from, s.v0, 0
	}
	for s.stepped < steps {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
		s.stepped++
	}
}

// Position implements sheet.Simulation.
func (s *Spring) Position(elapsed time.Duration) float64 {
	s.stepTo(elapsed)
	return s.pos
}

// Velocity implements sheet.Simulation.
func (s *Spring) Velocity(elapsed time.Duration) float64 {
	s.stepTo(elapsed)
	return s.vel
}

// Done implements sheet.Simulation.
func (s *Spring) Done(elapsed time.Duration) bool {
	s.stepTo(elapsed)
	return math.Abs(s.pos-s.target) < springRestDistance &&
		math.Abs(s.vel) < springRestVelocity
}
