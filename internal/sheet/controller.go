// internal/sheet/controller.go
package sheet

import (
	"slices"
	"time"
)

// Config configures a Controller. Zero fields fall back to defaults:
// bounds spanning zero to the full content height, an initial position at
// the upper bound, the system clock, and no physics (ballistic and settle
// requests then go idle).
type Config struct {
	// MinExtent and MaxExtent resolve the offset bounds whenever the
	// content size changes.
	MinExtent Extent
	MaxExtent Extent
	// InitialExtent seeds the offset once content size and viewport are
	// both known.
	InitialExtent Extent
	// Physics supplies ballistic and settling simulations.
	Physics Physics
	// Clock timestamps activity starts.
	Clock Clock
}

type listenerEntry struct {
	id int
	fn func()
}

// Controller owns the live position state of one sheet: the metrics, the
// offset bounds, and the activity that decides how the offset evolves. It
// is the sole mutator of the offset; activities and hosts route every
// change through it.
//
// A controller is single-threaded. The host calls it from one goroutine
// and drives time by calling Tick; nothing here blocks or spawns.
//
// Contract violations (bounds-dependent calls before the sheet is
// measured, unbalanced dimension batches, use after Dispose) panic: they
// are caller sequencing bugs, not runtime errors.
type Controller struct {
	physics Physics
	clock   Clock

	minExtent     Extent
	maxExtent     Extent
	initialExtent Extent

	metrics  Metrics
	activity activity

	listeners  []listenerEntry
	listenerID int

	// Dimension batching. The counter tracks open batches; the old values
	// hold the pre-batch dimensions for the finalize notice, recorded at
	// the first change of each kind within the batch.
	dimensionBatch      int
	oldContent          *Size
	oldContentRecorded  bool
	oldViewport         *Viewport
	oldViewportRecorded bool

	disposed bool
}

// NewController returns a controller at rest with nothing measured yet.
func NewController(cfg Config) *Controller {
	c := &Controller{
		physics:       cfg.Physics,
		clock:         cfg.Clock,
		minExtent:     cfg.MinExtent,
		maxExtent:     cfg.MaxExtent,
		initialExtent: cfg.InitialExtent,
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	if c.minExtent == nil {
		c.minExtent = Proportional(0)
	}
	if c.maxExtent == nil {
		c.maxExtent = Proportional(1)
	}
	if c.initialExtent == nil {
		c.initialExtent = c.maxExtent
	}
	c.beginActivity(newIdleActivity())
	return c
}

// Metrics returns the live metrics by reference; later mutations are
// visible through it without re-fetching.
func (c *Controller) Metrics() *Metrics { return &c.metrics }

// Status reports the kind of the active activity.
func (c *Controller) Status() Status {
	c.ensureUsable()
	return c.activity.Status()
}

// MinExtent returns the lower bound resolution rule.
func (c *Controller) MinExtent() Extent { return c.minExtent }

// MaxExtent returns the upper bound resolution rule.
func (c *Controller) MaxExtent() Extent { return c.maxExtent }

// Listen registers fn to run synchronously whenever the offset or the
// on-screen view offset changes. The returned remove function unregisters
// it and is safe to call more than once or after Dispose.
func (c *Controller) Listen(fn func()) (remove func()) {
	c.ensureUsable()
	c.listenerID++
	id := c.listenerID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(e listenerEntry) bool {
			return e.id == id
		})
	}
}

func (c *Controller) notifyListeners() {
	// Iterate a copy so a listener may remove itself mid-notification.
	for _, l := range slices.Clone(c.listeners) {
		l.fn()
	}
}

// BeginDimensionChange opens a dimension-change batch and returns the
// function that closes it. Batches nest; the finalize notice is delivered
// once, when the outermost end runs. Calling end twice panics. A batch
// left open is detected at the next Tick and panics there.
//
// Dimension setters called outside any batch run inside a batch of their
// own, so every change is finalized exactly once either way.
func (c *Controller) BeginDimensionChange() (end func()) {
	c.ensureUsable()
	c.dimensionBatch++
	ended := false
	return func() {
		if ended {
			panic("sheet: dimension change batch ended twice")
		}
		ended = true
		c.ensureUsable()
		c.dimensionBatch--
		if c.dimensionBatch == 0 {
			c.finalizeDimensions()
		}
	}
}

// ApplyContentSize records a new content size, re-resolves the offset
// bounds, and notifies the active activity. Applying a structurally equal
// size is a no-op.
func (c *Controller) ApplyContentSize(content Size) {
	c.ensureUsable()
	if cur, ok := c.metrics.ContentSize(); ok && cur == content {
		return
	}
	end := c.BeginDimensionChange()
	var prev *Size
	if p, ok := c.metrics.ContentSize(); ok {
		pp := p
		prev = &pp
	}
	if !c.oldContentRecorded {
		c.oldContentRecorded = true
		c.oldContent = prev
	}
	c.metrics.setContentSize(content)
	c.resolveBounds()
	c.activity.DidChangeContentSize(prev)
	end()
}

// ApplyViewport records new viewport dimensions and notifies the active
// activity. Applying a structurally equal viewport is a no-op. Listeners
// are notified only if the offset or the derived view offset actually
// changed.
func (c *Controller) ApplyViewport(viewport Viewport) {
	c.ensureUsable()
	if cur, ok := c.metrics.Viewport(); ok && cur == viewport {
		return
	}
	beforeOff, beforeOffOK := c.metrics.Offset()
	beforeView, beforeViewOK := c.metrics.ViewOffset()

	end := c.BeginDimensionChange()
	var prev *Viewport
	if p, ok := c.metrics.Viewport(); ok {
		pp := p
		prev = &pp
	}
	if !c.oldViewportRecorded {
		c.oldViewportRecorded = true
		c.oldViewport = prev
	}
	c.metrics.setViewport(viewport)
	c.activity.DidChangeViewportDimensions(prev)
	end()

	afterOff, afterOffOK := c.metrics.Offset()
	afterView, afterViewOK := c.metrics.ViewOffset()
	offsetChanged := beforeOffOK != afterOffOK || beforeOff != afterOff
	viewChanged := beforeViewOK != afterViewOK || beforeView != afterView
	// An offset change already notified through setOffset; only an inset
	// shift that moved the view offset alone still needs one.
	if viewChanged && !offsetChanged {
		c.notifyListeners()
	}
}

// finalizeDimensions delivers the once-per-batch notice to the active
// activity with the pre-batch dimensions, then seeds the initial offset if
// it is still absent. The recorded old values are cleared first so a
// transition started inside the notice sees a clean slate.
func (c *Controller) finalizeDimensions() {
	oldContent, oldViewport := c.oldContent, c.oldViewport
	c.oldContent, c.oldContentRecorded = nil, false
	c.oldViewport, c.oldViewportRecorded = nil, false
	c.activity.DidFinalizeDimensions(oldContent, oldViewport)
	c.seedOffset()
}

func (c *Controller) resolveBounds() {
	content, ok := c.metrics.ContentSize()
	if !ok {
		return
	}
	c.metrics.setMinOffset(c.minExtent.Resolve(content))
	c.metrics.setMaxOffset(c.maxExtent.Resolve(content))
}

func (c *Controller) seedOffset() {
	if _, ok := c.metrics.Offset(); ok {
		return
	}
	content, ok := c.metrics.ContentSize()
	if !ok {
		return
	}
	if _, ok := c.metrics.Viewport(); !ok {
		return
	}
	c.setOffset(c.clampToBounds(c.initialExtent.Resolve(content)))
}

func (c *Controller) clampToBounds(v float64) float64 {
	if min, ok := c.metrics.MinOffset(); ok && v < min {
		v = min
	}
	if max, ok := c.metrics.MaxOffset(); ok && v > max {
		v = max
	}
	return v
}

// setOffset is the single offset mutation point. Every activity and public
// method funnels through it, which is what makes the change notification
// complete.
func (c *Controller) setOffset(v float64) {
	if cur, ok := c.metrics.Offset(); ok && cur == v {
		return
	}
	c.metrics.setOffset(v)
	c.notifyListeners()
}

// GoIdle stops all motion and holds the sheet at the current offset.
func (c *Controller) GoIdle() {
	c.ensureUsable()
	c.beginActivity(newIdleActivity())
}

// GoBallistic releases the sheet with the given velocity, in offset units
// per second. The physics policy chooses the motion; if it declines, or no
// policy is configured, the sheet goes idle.
func (c *Controller) GoBallistic(velocity float64) {
	c.ensureUsable()
	c.requireMeasured("GoBallistic")
	if c.physics == nil {
		c.GoIdle()
		return
	}
	sim := c.physics.BallisticSimulation(c.metrics.Snapshot(), velocity)
	if sim == nil {
		c.GoIdle()
		return
	}
	c.beginActivity(newBallisticActivity(sim))
}

// GoBallisticWith starts ballistic motion along the given simulation,
// bypassing the physics policy.
func (c *Controller) GoBallisticWith(sim Simulation) {
	c.ensureUsable()
	c.requireMeasured("GoBallisticWith")
	c.beginActivity(newBallisticActivity(sim))
}

// Settle asks the physics policy for the motion that brings the sheet to
// rest at a preferred position. If the policy declines, or no policy is
// configured, the sheet goes idle.
func (c *Controller) Settle() {
	c.ensureUsable()
	c.requireMeasured("Settle")
	if c.physics == nil {
		c.GoIdle()
		return
	}
	sim := c.physics.SettleSimulation(c.metrics.Snapshot())
	if sim == nil {
		c.GoIdle()
		return
	}
	c.beginActivity(newBallisticActivity(sim))
}

// AnimateTo animates the offset to the target extent over duration, shaped
// by curve (nil means Linear). The returned channel is closed when the
// animation completes or is superseded by another activity. If the target
// resolves to the current offset, the channel is already closed and no
// transition or notification happens.
func (c *Controller) AnimateTo(target Extent, curve Curve, duration time.Duration) <-chan struct{} {
	c.ensureUsable()
	c.requireMeasured("AnimateTo")
	content, _ := c.metrics.ContentSize()
	to := target.Resolve(content)
	if c.metrics.Measured().Offset() == to {
		done := make(chan struct{})
		close(done)
		return done
	}
	act := newAnimatedActivity(target, to, curve, duration)
	c.beginActivity(act)
	return act.done
}

// DragTo pins the sheet at the given offset, entering the dragging state
// if it is not already there. The offset is applied verbatim; hosts may
// drag past the bounds and release with GoBallistic to spring back.
func (c *Controller) DragTo(offset float64) {
	c.ensureUsable()
	c.requireMeasured("DragTo")
	if c.activity.Status() != StatusDragging {
		c.beginActivity(newDragActivity())
	}
	c.setOffset(offset)
}

// DragBy shifts the sheet by delta, entering the dragging state first. See
// DragTo.
func (c *Controller) DragBy(delta float64) {
	c.ensureUsable()
	c.requireMeasured("DragBy")
	c.DragTo(c.metrics.Measured().Offset() + delta)
}

// Tick advances time-dependent motion to now. Hosts call it once per
// frame while Status().IsAnimating() reports true. Tick is also the point
// where a dimension batch left open since the previous frame is caught.
func (c *Controller) Tick(now time.Time) {
	c.ensureUsable()
	if c.dimensionBatch != 0 {
		panic("sheet: dimension change batch left open across a tick")
	}
	c.activity.Tick(now)
}

// TakeOver adopts the live state of another controller: its dimensions,
// its offset, and its in-flight activity, so motion continues here without
// snapping. The other controller is left idle and still usable; disposing
// it afterwards is the host's call.
func (c *Controller) TakeOver(other *Controller) {
	c.ensureUsable()
	other.ensureUsable()
	if v, ok := other.metrics.Viewport(); ok {
		c.metrics.setViewport(v)
	}
	if s, ok := other.metrics.ContentSize(); ok {
		c.metrics.setContentSize(s)
		c.resolveBounds()
	}
	if off, ok := other.metrics.Offset(); ok {
		c.setOffset(off)
	}
	c.beginActivity(other.releaseActivity())
}

// releaseActivity hands the live activity to a successor and swaps a fresh
// idle activity in. The released activity is not disposed; the successor
// owns it from here.
func (c *Controller) releaseActivity() activity {
	prev := c.activity
	idle := newIdleActivity()
	c.activity = idle
	idle.Init(c)
	return prev
}

// beginActivity replaces the active activity. The order is load-bearing:
// the next activity is attached first so its reads resolve against this
// controller, then it takes over continuity state from the previous one,
// and only then is the previous one disposed.
func (c *Controller) beginActivity(next activity) {
	prev := c.activity
	c.activity = next
	next.Init(c)
	if prev != nil {
		next.TakeOver(prev)
		prev.Dispose()
	}
}

// Dispose disposes the active activity and makes the controller unusable.
// Any later call panics.
func (c *Controller) Dispose() {
	c.ensureUsable()
	c.disposed = true
	c.activity.Dispose()
	c.activity = nil
	c.listeners = nil
}

func (c *Controller) ensureUsable() {
	if c.disposed {
		panic("sheet: controller used after Dispose")
	}
}

func (c *Controller) requireMeasured(op string) {
	if !c.metrics.IsMeasured() {
		panic("sheet: " + op + " called before the sheet was measured")
	}
}
