// Package physics provides the default motion policy for the sheet
// controller and the simulations behind it: a damped harmonic spring, a
// friction coast, and a snapping policy that settles the sheet at the
// nearest detent.
package physics

import (
	"math"

	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

// Defaults applied by NewSnapPhysics for zero config fields.
const (
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 1.0
	DefaultFrictionTau     = 0.325
	DefaultRestDistance    = 0.5
	DefaultRestVelocity    = 1.0
)

// Compile-time check that SnapPhysics implements sheet.Physics.
var _ sheet.Physics = (*SnapPhysics)(nil)

// SnapConfig configures a SnapPhysics policy. Zero fields fall back to the
// package defaults; an empty detent list snaps to the offset bounds.
type SnapConfig struct {
	// Detents are the preferred resting positions, resolved against the
	// content size and clamped into the offset bounds.
	Detents []sheet.Extent
	// SpringFrequency and SpringDamping shape the snap motion.
	SpringFrequency float64
	SpringDamping   float64
	// FrictionTau is the time constant, in seconds, of the coast used to
	// project where a release would land.
	FrictionTau float64
	// RestDistance and RestVelocity define "already at rest": within
	// RestDistance of the chosen detent and slower than RestVelocity, the
	// policy declines and the sheet stays put.
	RestDistance float64
	RestVelocity float64
}

// SnapPhysics settles the sheet at the nearest detent. A release is
// projected along a friction coast, the detent nearest the projected
// landing point wins, and a spring carries the sheet there.
type SnapPhysics struct {
	detents      []sheet.Extent
	frequency    float64
	damping      float64
	tau          float64
	restDistance float64
	restVelocity float64
}

// NewSnapPhysics returns a snapping policy with defaults applied for zero
// config fields.
func NewSnapPhysics(cfg SnapConfig) *SnapPhysics {
	p := &SnapPhysics{
		detents:      cfg.Detents,
		frequency:    cfg.SpringFrequency,
		damping:      cfg.SpringDamping,
		tau:          cfg.FrictionTau,
		restDistance: cfg.RestDistance,
		restVelocity: cfg.RestVelocity,
	}
	if p.frequency <= 0 {
		p.frequency = DefaultSpringFrequency
	}
	if p.damping <= 0 {
		p.damping = DefaultSpringDamping
	}
	if p.tau <= 0 {
		p.tau = DefaultFrictionTau
	}
	if p.restDistance <= 0 {
		p.restDistance = DefaultRestDistance
	}
	if p.restVelocity <= 0 {
		p.restVelocity = DefaultRestVelocity
	}
	return p
}

// BallisticSimulation implements sheet.Physics.
func (p *SnapPhysics) BallisticSimulation(m sheet.Snapshot, velocity float64) sheet.Simulation {
	target := p.Target(m, velocity)
	if math.Abs(target-m.Offset) < p.restDistance && math.Abs(velocity) < p.restVelocity {
		return nil
	}
	return NewSpring(m.Offset, velocity, target, p.frequency, p.damping)
}

// SettleSimulation implements sheet.Physics.
func (p *SnapPhysics) SettleSimulation(m sheet.Snapshot) sheet.Simulation {
	return p.BallisticSimulation(m, 0)
}

// Target returns the offset a release with the given velocity snaps to:
// the candidate detent nearest the friction-projected landing point.
func (p *SnapPhysics) Target(m sheet.Snapshot, velocity float64) float64 {
	projected := NewFriction(m.Offset, velocity, p.tau).Project()
	if projected < m.MinOffset {
		projected = m.MinOffset
	}
	if projected > m.MaxOffset {
		projected = m.MaxOffset
	}

	candidates := p.candidates(m)
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c-projected) < math.Abs(best-projected) {
			best = c
		}
	}
	return best
}

func (p *SnapPhysics) candidates(m sheet.Snapshot) []float64 {
	if len(p.detents) == 0 {
		return []float64{m.MinOffset, m.MaxOffset}
	}
	out := make([]float64, 0, len(p.detents))
	for _, d := range p.detents {
		v := d.Resolve(m.ContentSize)
		if v < m.MinOffset {
			v = m.MinOffset
		}
		if v > m.MaxOffset {
			v = m.MaxOffset
		}
		out = append(out, v)
	}
	return out
}
