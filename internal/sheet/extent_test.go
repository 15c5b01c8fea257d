package sheet

import "testing"

func TestFixed_ResolveIgnoresContentSize(t *testing.T) {
	tests := []struct {
		name    string
		content Size
	}{
		{"zero size", Size{}},
		{"small", Size{Width: 10, Height: 20}},
		{"large", Size{Width: 400, Height: 2000}},
	}

	e := Fixed(120)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Resolve(tt.content); got != 120 {
				t.Errorf("Fixed(120).Resolve(%v) = %v, want 120", tt.content, got)
			}
		})
	}
}

func TestProportional_ResolveScalesContentHeight(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		content  Size
		want     float64
	}{
		{"half of 200", 0.5, Size{Width: 80, Height: 200}, 100},
		{"full height", 1, Size{Width: 80, Height: 200}, 200},
		{"zero fraction", 0, Size{Width: 80, Height: 200}, 0},
		{"zero height", 0.5, Size{Width: 80, Height: 0}, 0},
		{"above full", 1.5, Size{Width: 80, Height: 100}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Proportional(tt.fraction).Resolve(tt.content); got != tt.want {
				t.Errorf("Proportional(%v).Resolve(%v) = %v, want %v",
					tt.fraction, tt.content, got, tt.want)
			}
		})
	}
}

func TestExtent_StructuralEquality(t *testing.T) {
	if Fixed(50) != Fixed(50) {
		t.Error("Fixed(50) != Fixed(50)")
	}
	if Fixed(50) == Fixed(51) {
		t.Error("Fixed(50) == Fixed(51)")
	}
	if Proportional(0.5) != Proportional(0.5) {
		t.Error("Proportional(0.5) != Proportional(0.5)")
	}
	if Proportional(0.5) == Proportional(0.25) {
		t.Error("Proportional(0.5) == Proportional(0.25)")
	}
}

func TestExtent_NegativeValuesPanic(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"fixed", func() { Fixed(-1) }},
		{"proportional", func() { Proportional(-0.1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for a negative extent")
				}
			}()
			tt.call()
		})
	}
}

func TestExtent_ZeroIsValid(t *testing.T) {
	if got := Fixed(0).Resolve(Size{Height: 100}); got != 0 {
		t.Errorf("Fixed(0).Resolve = %v, want 0", got)
	}
	if got := Proportional(0).Resolve(Size{Height: 100}); got != 0 {
		t.Errorf("Proportional(0).Resolve = %v, want 0", got)
	}
}
