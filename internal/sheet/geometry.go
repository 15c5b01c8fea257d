package sheet

// Size is a measured width/height pair in cells.
type Size struct {
	Width  float64
	Height float64
}

// Insets describes space reserved at the edges of the viewport, such as a
// bottom inset from an on-screen keyboard or input bar.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Viewport is the size of the visible area surrounding the sheet together
// with the insets carved out of it.
type Viewport struct {
	Width  float64
	Height float64
	Insets Insets
}
