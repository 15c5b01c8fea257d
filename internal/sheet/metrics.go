// internal/sheet/metrics.go
package sheet

// Metrics is the live position state of one sheet: the current offset, the
// resolved offset bounds, and the last known content and viewport
// dimensions. Every field may be absent until the host has delivered the
// corresponding measurement, so the plain accessors return a value together
// with a presence flag.
//
// Once IsMeasured reports true, Measured gives a view whose accessors
// return values directly, and Snapshot gives an immutable copy suitable for
// handing to a physics policy.
//
// The owning Controller is the only mutator; everything else reads.
type Metrics struct {
	offset    float64
	hasOffset bool

	minOffset    float64
	hasMinOffset bool

	maxOffset    float64
	hasMaxOffset bool

	contentSize    Size
	hasContentSize bool

	viewport    Viewport
	hasViewport bool
}

// Offset returns the current offset: the distance from the bottom of the
// viewport, before insets, to the top of the sheet.
func (m *Metrics) Offset() (float64, bool) { return m.offset, m.hasOffset }

// MinOffset returns the resolved lower offset bound.
func (m *Metrics) MinOffset() (float64, bool) { return m.minOffset, m.hasMinOffset }

// MaxOffset returns the resolved upper offset bound.
func (m *Metrics) MaxOffset() (float64, bool) { return m.maxOffset, m.hasMaxOffset }

// ContentSize returns the last measured size of the sheet content.
func (m *Metrics) ContentSize() (Size, bool) { return m.contentSize, m.hasContentSize }

// Viewport returns the last measured viewport dimensions.
func (m *Metrics) Viewport() (Viewport, bool) { return m.viewport, m.hasViewport }

// ViewOffset returns the offset as seen on screen: the offset plus the
// bottom viewport inset. Absent while either input is absent.
func (m *Metrics) ViewOffset() (float64, bool) {
	if !m.hasOffset || !m.hasViewport {
		return 0, false
	}
	return m.offset + m.viewport.Insets.Bottom, true
}

// MinViewOffset is the ViewOffset analog of MinOffset.
func (m *Metrics) MinViewOffset() (float64, bool) {
	if !m.hasMinOffset || !m.hasViewport {
		return 0, false
	}
	return m.minOffset + m.viewport.Insets.Bottom, true
}

// MaxViewOffset is the ViewOffset analog of MaxOffset.
func (m *Metrics) MaxViewOffset() (float64, bool) {
	if !m.hasMaxOffset || !m.hasViewport {
		return 0, false
	}
	return m.maxOffset + m.viewport.Insets.Bottom, true
}

// IsMeasured reports whether offset, both bounds, content size, and
// viewport are all known.
func (m *Metrics) IsMeasured() bool {
	return m.hasOffset && m.hasMinOffset && m.hasMaxOffset && m.hasContentSize && m.hasViewport
}

// IsInBounds reports whether the sheet is measured and the offset lies
// within [MinOffset, MaxOffset]. The bounds themselves count as in bounds.
func (m *Metrics) IsInBounds() bool {
	return m.IsMeasured() && m.minOffset <= m.offset && m.offset <= m.maxOffset
}

// Measured returns the asserted view over the same fields. Its accessors
// panic when the underlying field is absent; callers check IsMeasured
// first.
func (m *Metrics) Measured() MeasuredMetrics { return MeasuredMetrics{m: m} }

// Snapshot returns a fully populated copy of the current metrics. Panics
// if the sheet is not measured.
func (m *Metrics) Snapshot() Snapshot {
	v := m.Measured()
	return Snapshot{
		Offset:      v.Offset(),
		MinOffset:   v.MinOffset(),
		MaxOffset:   v.MaxOffset(),
		ContentSize: v.ContentSize(),
		Viewport:    v.Viewport(),
	}
}

func (m *Metrics) setOffset(v float64) { m.offset, m.hasOffset = v, true }

func (m *Metrics) setMinOffset(v float64) { m.minOffset, m.hasMinOffset = v, true }

func (m *Metrics) setMaxOffset(v float64) { m.maxOffset, m.hasMaxOffset = v, true }

func (m *Metrics) setContentSize(s Size) { m.contentSize, m.hasContentSize = s, true }

func (m *Metrics) setViewport(v Viewport) { m.viewport, m.hasViewport = v, true }

// MeasuredMetrics is the non-optional view over a sheet's Metrics. It
// holds no state of its own; every accessor delegates to the backing
// Metrics and panics if the field is still absent.
type MeasuredMetrics struct {
	m *Metrics
}

// Offset returns the current offset.
func (v MeasuredMetrics) Offset() float64 {
	off, ok := v.m.Offset()
	if !ok {
		panic("sheet: offset read before measurement")
	}
	return off
}

// MinOffset returns the resolved lower offset bound.
func (v MeasuredMetrics) MinOffset() float64 {
	min, ok := v.m.MinOffset()
	if !ok {
		panic("sheet: min offset read before measurement")
	}
	return min
}

// MaxOffset returns the resolved upper offset bound.
func (v MeasuredMetrics) MaxOffset() float64 {
	max, ok := v.m.MaxOffset()
	if !ok {
		panic("sheet: max offset read before measurement")
	}
	return max
}

// ContentSize returns the measured content size.
func (v MeasuredMetrics) ContentSize() Size {
	s, ok := v.m.ContentSize()
	if !ok {
		panic("sheet: content size read before measurement")
	}
	return s
}

// Viewport returns the measured viewport dimensions.
func (v MeasuredMetrics) Viewport() Viewport {
	vp, ok := v.m.Viewport()
	if !ok {
		panic("sheet: viewport read before measurement")
	}
	return vp
}

// ViewOffset returns the on-screen offset.
func (v MeasuredMetrics) ViewOffset() float64 {
	return v.Offset() + v.Viewport().Insets.Bottom
}

// Snapshot is an immutable, fully populated copy of measured metrics.
// Snapshots are plain comparable values: two snapshots with identical
// fields are equal and may be used as map keys.
type Snapshot struct {
	Offset      float64
	MinOffset   float64
	MaxOffset   float64
	ContentSize Size
	Viewport    Viewport
}

// ViewOffset returns the offset plus the bottom viewport inset.
func (s Snapshot) ViewOffset() float64 { return s.Offset + s.Viewport.Insets.Bottom }

// MinViewOffset returns the lower bound plus the bottom viewport inset.
func (s Snapshot) MinViewOffset() float64 { return s.MinOffset + s.Viewport.Insets.Bottom }

// MaxViewOffset returns the upper bound plus the bottom viewport inset.
func (s Snapshot) MaxViewOffset() float64 { return s.MaxOffset + s.Viewport.Insets.Bottom }
