// Headless trace tool for tuning sheet physics. It drives one motion to
// rest on a fixed timestep and prints a row per simulated frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ice-orion/smooth-sheets/internal/errmsg"
	"github.com/ice-orion/smooth-sheets/internal/physics"
	"github.com/ice-orion/smooth-sheets/internal/sheet"
)

// maxSteps bounds the trace so a simulation that never rests still
// terminates. At the default 16ms timestep this is 48 seconds.
const maxSteps = 3000

func main() {
	mode := flag.String("mode", "ballistic", "motion to trace: ballistic, settle or animate")
	velocity := flag.Float64("velocity", 30, "release velocity in rows per second (ballistic)")
	from := flag.Float64("from", 0.4, "starting offset as a fraction of the content height")
	target := flag.Float64("target", 1, "target extent as a fraction (animate)")
	duration := flag.Duration("duration", 300*time.Millisecond, "animation duration (animate)")
	width := flag.Int("width", 80, "content width in columns")
	height := flag.Int("height", 40, "content height in rows")
	dt := flag.Duration("dt", 16*time.Millisecond, "simulated frame period")
	flag.Parse()

	err := run(traceParams{
		mode:     *mode,
		velocity: *velocity,
		from:     *from,
		target:   *target,
		duration: *duration,
		width:    *width,
		height:   *height,
		dt:       *dt,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpTraceRun, *mode, err))
		os.Exit(1)
	}
}

type traceParams struct {
	mode     string
	velocity float64
	from     float64
	target   float64
	duration time.Duration
	width    int
	height   int
	dt       time.Duration
}

func run(p traceParams) error {
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if p.from < 0 || p.from > 1 {
		return fmt.Errorf("from must be within [0, 1]")
	}
	if p.dt <= 0 {
		return fmt.Errorf("dt must be positive")
	}

	clock := sheet.NewManualClock(time.Unix(0, 0))
	ctrl := sheet.NewController(sheet.Config{
		InitialExtent: sheet.Proportional(p.from),
		Physics: physics.NewSnapPhysics(physics.SnapConfig{
			Detents: []sheet.Extent{
				sheet.Proportional(0),
				sheet.Proportional(0.5),
				sheet.Proportional(1),
			},
		}),
		Clock: clock,
	})
	defer ctrl.Dispose()

	end := ctrl.BeginDimensionChange()
	ctrl.ApplyContentSize(sheet.Size{Width: float64(p.width), Height: float64(p.height)})
	ctrl.ApplyViewport(sheet.Viewport{Width: float64(p.width), Height: float64(p.height)})
	end()

	changes := 0
	remove := ctrl.Listen(func() { changes++ })
	defer remove()

	switch p.mode {
	case "ballistic":
		ctrl.GoBallistic(p.velocity)
	case "settle":
		ctrl.Settle()
	case "animate":
		if p.target < 0 || p.target > 1 {
			return fmt.Errorf("target must be within [0, 1]")
		}
		if p.duration <= 0 {
			return fmt.Errorf("duration must be positive")
		}
		ctrl.AnimateTo(sheet.Proportional(p.target), sheet.EaseInOut, p.duration)
	default:
		return fmt.Errorf("unknown mode %q", p.mode)
	}

	fmt.Printf("step  elapsed     offset  status\n")
	steps := 0
	for step := 1; step <= maxSteps; step++ {
		clock.Advance(p.dt)
		ctrl.Tick(clock.Now())
		steps = step

		m := ctrl.Metrics().Measured()
		fmt.Printf("%4d  %8s  %9.3f  %s\n",
			step, time.Duration(step)*p.dt, m.Offset(), ctrl.Status())

		if !ctrl.Status().IsAnimating() {
			break
		}
	}
	if ctrl.Status().IsAnimating() {
		return fmt.Errorf("motion did not come to rest within %d frames", maxSteps)
	}

	m := ctrl.Metrics().Measured()
	fmt.Printf("at rest: offset %.3f after %d frames (%s simulated, %d offset changes)\n",
		m.Offset(), steps, time.Duration(steps)*p.dt, changes)
	return nil
}
