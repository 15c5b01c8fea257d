package sheet

import "testing"

func TestMetrics_IsMeasuredRequiresAllFields(t *testing.T) {
	// One bit per primary field; only the all-present combination counts
	// as measured.
	for mask := 0; mask < 32; mask++ {
		var m Metrics
		if mask&1 != 0 {
			m.setOffset(10)
		}
		if mask&2 != 0 {
			m.setMinOffset(0)
		}
		if mask&4 != 0 {
			m.setMaxOffset(100)
		}
		if mask&8 != 0 {
			m.setContentSize(Size{Width: 80, Height: 100})
		}
		if mask&16 != 0 {
			m.setViewport(Viewport{Width: 80, Height: 24})
		}
		want := mask == 31
		if got := m.IsMeasured(); got != want {
			t.Errorf("presence mask %05b: IsMeasured() = %v, want %v", mask, got, want)
		}
	}
}

func TestMetrics_IsInBounds(t *testing.T) {
	tests := []struct {
		name             string
		offset, min, max float64
		want             bool
	}{
		{"inside", 100, 0, 200, true},
		{"at min", 0, 0, 200, true},
		{"at max", 200, 0, 200, true},
		{"below min", -1, 0, 200, false},
		{"above max", 201, 0, 200, false},
		{"degenerate bounds", 50, 50, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metrics
			m.setOffset(tt.offset)
			m.setMinOffset(tt.min)
			m.setMaxOffset(tt.max)
			m.setContentSize(Size{Width: 80, Height: 200})
			m.setViewport(Viewport{Width: 80, Height: 24})
			if got := m.IsInBounds(); got != tt.want {
				t.Errorf("IsInBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetrics_IsInBoundsFalseWhileUnmeasured(t *testing.T) {
	var m Metrics
	m.setOffset(100)
	m.setMinOffset(0)
	m.setMaxOffset(200)
	if m.IsInBounds() {
		t.Error("IsInBounds() = true without content size and viewport")
	}
}

func TestMetrics_ViewOffsetAddsBottomInset(t *testing.T) {
	var m Metrics
	if _, ok := m.ViewOffset(); ok {
		t.Fatal("ViewOffset present on empty metrics")
	}
	m.setOffset(100)
	if _, ok := m.ViewOffset(); ok {
		t.Fatal("ViewOffset present without a viewport")
	}
	m.setViewport(Viewport{Width: 80, Height: 24, Insets: Insets{Bottom: 3}})
	got, ok := m.ViewOffset()
	if !ok || got != 103 {
		t.Fatalf("ViewOffset() = %v, %v, want 103, true", got, ok)
	}

	// Derived values recompute from the live fields.
	m.setOffset(50)
	if got, _ := m.ViewOffset(); got != 53 {
		t.Errorf("ViewOffset() after offset change = %v, want 53", got)
	}
	m.setViewport(Viewport{Width: 80, Height: 24})
	if got, _ := m.ViewOffset(); got != 50 {
		t.Errorf("ViewOffset() after inset change = %v, want 50", got)
	}

	m.setMinOffset(10)
	m.setMaxOffset(90)
	m.setViewport(Viewport{Width: 80, Height: 24, Insets: Insets{Bottom: 2}})
	if got, _ := m.MinViewOffset(); got != 12 {
		t.Errorf("MinViewOffset() = %v, want 12", got)
	}
	if got, _ := m.MaxViewOffset(); got != 92 {
		t.Errorf("MaxViewOffset() = %v, want 92", got)
	}
}

func TestMeasuredMetrics_PanicsOnAbsentField(t *testing.T) {
	tests := []struct {
		name string
		read func(v MeasuredMetrics)
	}{
		{"offset", func(v MeasuredMetrics) { v.Offset() }},
		{"min offset", func(v MeasuredMetrics) { v.MinOffset() }},
		{"max offset", func(v MeasuredMetrics) { v.MaxOffset() }},
		{"content size", func(v MeasuredMetrics) { v.ContentSize() }},
		{"viewport", func(v MeasuredMetrics) { v.Viewport() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metrics
			defer func() {
				if recover() == nil {
					t.Errorf("reading %s from empty metrics did not panic", tt.name)
				}
			}()
			tt.read(m.Measured())
		})
	}
}

func TestMeasuredMetrics_DelegatesToBackingStore(t *testing.T) {
	var m Metrics
	m.setOffset(100)
	m.setMinOffset(0)
	m.setMaxOffset(200)
	m.setContentSize(Size{Width: 80, Height: 200})
	m.setViewport(Viewport{Width: 80, Height: 24, Insets: Insets{Bottom: 3}})

	v := m.Measured()
	if v.Offset() != 100 || v.MinOffset() != 0 || v.MaxOffset() != 200 {
		t.Error("asserted view does not match the backing fields")
	}
	if v.ContentSize() != (Size{Width: 80, Height: 200}) {
		t.Errorf("ContentSize() = %v", v.ContentSize())
	}
	if v.ViewOffset() != 103 {
		t.Errorf("ViewOffset() = %v, want 103", v.ViewOffset())
	}

	// The view reads live state, not a copy.
	m.setOffset(150)
	if v.Offset() != 150 {
		t.Errorf("Offset() after mutation = %v, want 150", v.Offset())
	}
}

func TestSnapshot_EqualityAndIndependence(t *testing.T) {
	c, _ := newMeasuredController(t, nil)

	first := c.Metrics().Snapshot()
	second := c.Metrics().Snapshot()
	if first != second {
		t.Fatalf("two snapshots without mutation differ: %+v vs %+v", first, second)
	}

	// Snapshots are values; mutating the live controller must not reach
	// back into one already taken.
	c.DragTo(150)
	if first != second {
		t.Error("snapshot changed after controller mutation")
	}
	if got := c.Metrics().Snapshot(); got == first {
		t.Error("fresh snapshot still equals the pre-mutation one")
	}

	// Comparable: usable as a map key.
	seen := map[Snapshot]int{first: 1}
	if seen[second] != 1 {
		t.Error("equal snapshots do not hash alike")
	}
}

func TestSnapshot_PanicsWhileUnmeasured(t *testing.T) {
	c := NewController(Config{})
	defer func() {
		if recover() == nil {
			t.Fatal("Snapshot before measurement did not panic")
		}
	}()
	c.Metrics().Snapshot()
}

func TestSnapshot_ViewOffsets(t *testing.T) {
	s := Snapshot{
		Offset:      100,
		MinOffset:   10,
		MaxOffset:   200,
		ContentSize: Size{Width: 80, Height: 200},
		Viewport:    Viewport{Width: 80, Height: 24, Insets: Insets{Bottom: 3}},
	}
	if got := s.ViewOffset(); got != 103 {
		t.Errorf("ViewOffset() = %v, want 103", got)
	}
	if got := s.MinViewOffset(); got != 13 {
		t.Errorf("MinViewOffset() = %v, want 13", got)
	}
	if got := s.MaxViewOffset(); got != 203 {
		t.Errorf("MaxViewOffset() = %v, want 203", got)
	}
}
