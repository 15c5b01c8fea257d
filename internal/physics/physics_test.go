package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

func testSnapshot(offset float64) sheet.Snapshot {
	return sheet.Snapshot{
		Offset:      offset,
		MinOffset:   0,
		MaxOffset:   200,
		ContentSize: sheet.Size{Width: 80, Height: 200},
		Viewport:    sheet.Viewport{Width: 80, Height: 24},
	}
}

func halfDetents() []sheet.Extent {
	return []sheet.Extent{
		sheet.Proportional(0),
		sheet.Proportional(0.5),
		sheet.Proportional(1),
	}
}

func TestSpring_StartsFromInitialConditions(t *testing.T) {
	s := NewSpring(100, 40, 200, DefaultSpringFrequency, DefaultSpringDamping)
	require.Equal(t, 100.0, s.Position(0))
	require.Equal(t, 40.0, s.Velocity(0))
	require.False(t, s.Done(0))
}

func TestSpring_ConvergesOnTarget(t *testing.T) {
	s := NewSpring(100, 0, 200, DefaultSpringFrequency, DefaultSpringDamping)

	var elapsed time.Duration
	done := false
	for ; elapsed < 10*time.Second; elapsed += 16 * time.Millisecond {
		if s.Done(elapsed) {
			done = true
			break
		}
	}
	require.True(t, done, "spring never settled")
	require.InDelta(t, 200, s.Position(elapsed), 0.1)
}

func TestSpring_RestartsForEarlierQueries(t *testing.T) {
	s := NewSpring(100, 0, 200, DefaultSpringFrequency, DefaultSpringDamping)
	require.NotEqual(t, 100.0, s.Position(time.Second))
	require.Equal(t, 100.0, s.Position(0))
}

func TestFriction_ClosedForm(t *testing.T) {
	f := NewFriction(0, 10, 1)
	require.InDelta(t, 10*(1-math.Exp(-1)), f.Position(time.Second), 1e-9)
	require.InDelta(t, 10*math.Exp(-1), f.Velocity(time.Second), 1e-9)
	require.InDelta(t, 10.0, f.Project(), 1e-9)

	// v(t) crosses the rest threshold of 1 at t = ln(10) s.
	require.False(t, f.Done(2290*time.Millisecond))
	require.True(t, f.Done(2310*time.Millisecond))
}

func TestFriction_NonPositiveTimeConstantStopsAlmostImmediately(t *testing.T) {
	f := NewFriction(50, 100, 0)
	require.InDelta(t, 50.1, f.Project(), 1e-9)
	require.True(t, f.Done(10*time.Millisecond))
}

func TestSnapPhysics_DeclinesAtRestAtDetent(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{})
	require.Nil(t, p.BallisticSimulation(testSnapshot(200), 0))
	require.Nil(t, p.SettleSimulation(testSnapshot(0)))
}

func TestSnapPhysics_SettlesOnNearestDetent(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{Detents: halfDetents()})

	sim := p.SettleSimulation(testSnapshot(120))
	require.NotNil(t, sim)
	spring, ok := sim.(*Spring)
	require.True(t, ok, "snap returned %T, want *Spring", sim)
	require.Equal(t, 100.0, spring.Target())
}

func TestSnapPhysics_FlingProjectsAlongFriction(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{Detents: halfDetents(), FrictionTau: 0.325})

	// From the middle detent, +320/s projects to 204 and snaps to the top.
	sim := p.BallisticSimulation(testSnapshot(100), 320)
	require.NotNil(t, sim)
	require.Equal(t, 200.0, sim.(*Spring).Target())

	// The mirror release snaps to the bottom.
	sim = p.BallisticSimulation(testSnapshot(100), -320)
	require.NotNil(t, sim)
	require.Equal(t, 0.0, sim.(*Spring).Target())
}

func TestSnapPhysics_SlowReleaseStaysOnNearestDetent(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{Detents: halfDetents(), FrictionTau: 0.325})

	// A creep of +0.5/s from the middle detent projects right back onto
	// it, so the policy declines.
	require.Nil(t, p.BallisticSimulation(testSnapshot(100), 0.5))

	// Slightly off the detent it snaps back instead of declining.
	sim := p.BallisticSimulation(testSnapshot(104), 0)
	require.NotNil(t, sim)
	require.Equal(t, 100.0, sim.(*Spring).Target())
}

func TestSnapPhysics_ClampsDetentsIntoBounds(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{Detents: []sheet.Extent{sheet.Proportional(2)}})
	require.Equal(t, 200.0, p.Target(testSnapshot(100), 500))
}

func TestSnapPhysics_OverdragSpringsBackToBound(t *testing.T) {
	p := NewSnapPhysics(SnapConfig{})
	sim := p.SettleSimulation(testSnapshot(230))
	require.NotNil(t, sim)
	require.Equal(t, 200.0, sim.(*Spring).Target())
}

func TestSnapPhysics_DrivesControllerFling(t *testing.T) {
	clk := sheet.NewManualClock(time.Unix(1700000000, 0))
	ctrl := sheet.NewController(sheet.Config{
		Physics:       NewSnapPhysics(SnapConfig{Detents: halfDetents()}),
		Clock:         clk,
		InitialExtent: sheet.Proportional(0.5),
	})
	end := ctrl.BeginDimensionChange()
	ctrl.ApplyContentSize(sheet.Size{Width: 80, Height: 200})
	ctrl.ApplyViewport(sheet.Viewport{Width: 80, Height: 24})
	end()

	ctrl.GoBallistic(320)
	require.Equal(t, sheet.StatusBallistic, ctrl.Status())

	for i := 0; i < 600 && ctrl.Status().IsAnimating(); i++ {
		ctrl.Tick(clk.Advance(16 * time.Millisecond))
	}
	require.Equal(t, sheet.StatusIdle, ctrl.Status())
	require.InDelta(t, 200, ctrl.Metrics().Measured().Offset(), 0.1)
}
