// internal/sheet/activity.go
package sheet

import "time"

// Status identifies which kind of activity currently drives the sheet.
//
// The activity machine has four states. Transitions are triggered by the
// controller's public methods; Ballistic and Animated additionally
// transition to Idle on their own when their motion completes:
//
//	Idle ────────── DragTo ──────────▶ Dragging
//	any  ────────── GoIdle ──────────▶ Idle
//	any  ── GoBallistic / Settle ────▶ Ballistic (policy may decline: Idle)
//	any  ──────── AnimateTo ─────────▶ Animated  (equal target: no change)
//	Ballistic ── simulation done ────▶ Idle
//	Animated ─── duration elapsed ───▶ Idle
type Status int

const (
	// StatusIdle means the offset is static.
	StatusIdle Status = iota
	// StatusDragging means externally supplied drag positions pin the
	// offset.
	StatusDragging
	// StatusBallistic means a physics simulation drives the offset.
	StatusBallistic
	// StatusAnimated means a timed interpolation drives the offset.
	StatusAnimated
)

// String returns the status name for debugging.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusDragging:
		return "Dragging"
	case StatusBallistic:
		return "Ballistic"
	case StatusAnimated:
		return "Animated"
	default:
		return "Unknown"
	}
}

// IsAnimating reports whether the status advances on its own over time and
// therefore needs host ticks.
func (s Status) IsAnimating() bool {
	return s == StatusBallistic || s == StatusAnimated
}

// activity is the strategy that owns how the offset evolves while it is
// attached. Exactly one activity is attached to a controller at a time.
//
// The controller drives the whole lifecycle: Init on attach, TakeOver with
// the outgoing activity, the dimension notices while attached, Dispose on
// replacement. Activities never call each other and mutate the offset only
// through their owner.
type activity interface {
	// Init attaches the activity to its owning controller. Called again
	// with the new owner when a controller takeover adopts the activity.
	Init(owner *Controller)
	// Dispose releases the activity. The controller never calls in again
	// after Dispose.
	Dispose()
	// Status reports the activity kind.
	Status() Status
	// Tick advances time-dependent motion to now.
	Tick(now time.Time)
	// TakeOver lets a freshly attached activity copy continuity state from
	// the activity it replaces, before that one is disposed.
	TakeOver(prev activity)
	// DidChangeContentSize reacts to a single content size change. old is
	// the size immediately before the change, nil if none was known.
	DidChangeContentSize(old *Size)
	// DidChangeViewportDimensions is the viewport analog of
	// DidChangeContentSize.
	DidChangeViewportDimensions(old *Viewport)
	// DidFinalizeDimensions is delivered once per dimension-change batch,
	// after all changes have been applied. The arguments hold the values
	// from before the batch, nil for a dimension that did not change or
	// was not yet known.
	DidFinalizeDimensions(oldContent *Size, oldViewport *Viewport)
}

// activityBase supplies owner bookkeeping and no-op reactions. Every
// activity embeds it and overrides only what it needs.
type activityBase struct {
	owner *Controller
}

func (b *activityBase) Init(owner *Controller) { b.owner = owner }

func (b *activityBase) Dispose() { b.owner = nil }

func (b *activityBase) Tick(time.Time) {}

func (b *activityBase) TakeOver(activity) {}

func (b *activityBase) DidChangeContentSize(*Size) {}

func (b *activityBase) DidChangeViewportDimensions(*Viewport) {}

func (b *activityBase) DidFinalizeDimensions(*Size, *Viewport) {}

// idleActivity holds the sheet static. When a dimension batch finalizes
// with a new content height it keeps the offset at the fraction of the
// content it occupied before the batch.
type idleActivity struct {
	activityBase
}

func newIdleActivity() *idleActivity { return &idleActivity{} }

func (a *idleActivity) Status() Status { return StatusIdle }

func (a *idleActivity) DidFinalizeDimensions(oldContent *Size, _ *Viewport) {
	if oldContent == nil || oldContent.Height <= 0 {
		return
	}
	content, ok := a.owner.metrics.ContentSize()
	if !ok || content.Height == oldContent.Height {
		return
	}
	off, ok := a.owner.metrics.Offset()
	if !ok {
		return
	}
	fraction := off / oldContent.Height
	a.owner.setOffset(a.owner.clampToBounds(fraction * content.Height))
}

// dragActivity pins the offset to externally supplied drag positions. It
// performs no motion of its own; the controller's DragTo writes through
// while it is attached.
type dragActivity struct {
	activityBase
}

func newDragActivity() *dragActivity { return &dragActivity{} }

func (a *dragActivity) Status() Status { return StatusDragging }

// ballisticActivity advances the offset along a physics simulation until
// the simulation reports it is done, then returns the controller to idle.
type ballisticActivity struct {
	activityBase
	sim     Simulation
	start   time.Time
	started bool
}

func newBallisticActivity(sim Simulation) *ballisticActivity {
	return &ballisticActivity{sim: sim}
}

func (a *ballisticActivity) Init(owner *Controller) {
	a.activityBase.Init(owner)
	// The start time survives re-attachment so an adopted simulation
	// continues on its original timeline.
	if !a.started {
		a.started = true
		a.start = owner.clock.Now()
	}
}

func (a *ballisticActivity) Status() Status { return StatusBallistic }

func (a *ballisticActivity) Tick(now time.Time) {
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	owner := a.owner
	owner.setOffset(a.sim.Position(elapsed))
	if a.sim.Done(elapsed) {
		// GoIdle disposes this activity; nothing may follow.
		owner.GoIdle()
	}
}

func (a *ballisticActivity) DidFinalizeDimensions(oldContent *Size, oldViewport *Viewport) {
	if oldContent == nil && oldViewport == nil {
		return
	}
	// The ground moved under an in-flight simulation; ask the policy for a
	// fresh landing spot. Settle replaces this activity, so it must be the
	// last thing this method does.
	a.owner.Settle()
}

// animatedActivity interpolates the offset from its value at activation to
// a resolved target extent over a fixed duration, shaped by a curve.
type animatedActivity struct {
	activityBase
	target   Extent
	to       float64
	curve    Curve
	duration time.Duration

	from    float64
	start   time.Time
	started bool
	done    chan struct{}
	closed  bool
}

func newAnimatedActivity(target Extent, to float64, curve Curve, duration time.Duration) *animatedActivity {
	if curve == nil {
		curve = Linear
	}
	if duration < 0 {
		duration = 0
	}
	return &animatedActivity{
		target:   target,
		to:       to,
		curve:    curve,
		duration: duration,
		done:     make(chan struct{}),
	}
}

func (a *animatedActivity) Init(owner *Controller) {
	a.activityBase.Init(owner)
	// The start value and timeline survive re-attachment; see
	// ballisticActivity.Init.
	if !a.started {
		a.started = true
		a.start = owner.clock.Now()
		a.from = owner.metrics.Measured().Offset()
	}
}

func (a *animatedActivity) Status() Status { return StatusAnimated }

func (a *animatedActivity) Tick(now time.Time) {
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	owner := a.owner
	if elapsed >= a.duration {
		owner.setOffset(a.to)
		// GoIdle disposes this activity, closing the done channel.
		owner.GoIdle()
		return
	}
	t := a.curve(float64(elapsed) / float64(a.duration))
	owner.setOffset(a.from + (a.to-a.from)*t)
}

func (a *animatedActivity) DidFinalizeDimensions(oldContent *Size, _ *Viewport) {
	if oldContent == nil {
		return
	}
	// Re-resolve the destination so proportional targets track the new
	// content height.
	if content, ok := a.owner.metrics.ContentSize(); ok {
		a.to = a.target.Resolve(content)
	}
}

// Dispose closes the completion channel, covering both natural completion
// and supersession by another activity.
func (a *animatedActivity) Dispose() {
	if !a.closed {
		a.closed = true
		close(a.done)
	}
	a.activityBase.Dispose()
}
