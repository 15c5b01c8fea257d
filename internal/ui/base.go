// Package ui provides shared building blocks for TUI components.
package ui

// Base holds the dimensions a component was last given. Embed it in a
// component model to get the size plumbing without repeating it.
type Base struct {
	width, height int
}

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the last width given to SetSize.
func (b Base) Width() int {
	return b.width
}

// Height returns the last height given to SetSize.
func (b Base) Height() int {
	return b.height
}
