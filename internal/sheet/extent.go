// internal/sheet/extent.go
package sheet

import "fmt"

// Extent is a resolvable target position for the sheet: either an absolute
// distance or a fraction of the content height.
type Extent interface {
	// Resolve converts the extent to an absolute offset for the given
	// content size.
	Resolve(content Size) float64
}

// Compile-time checks that both extent kinds implement Extent.
var (
	_ Extent = FixedExtent{}
	_ Extent = ProportionalExtent{}
)

// FixedExtent resolves to the same absolute offset regardless of content
// size.
type FixedExtent struct {
	pixels float64
}

// Fixed returns an extent at an absolute offset. Panics if pixels is
// negative.
func Fixed(pixels float64) FixedExtent {
	if pixels < 0 {
		panic(fmt.Sprintf("sheet: fixed extent must not be negative, got %v", pixels))
	}
	return FixedExtent{pixels: pixels}
}

// Pixels returns the absolute offset this extent resolves to.
func (e FixedExtent) Pixels() float64 { return e.pixels }

// Resolve implements Extent.
func (e FixedExtent) Resolve(Size) float64 { return e.pixels }

// ProportionalExtent resolves to a fraction of the content height.
type ProportionalExtent struct {
	fraction float64
}

// Proportional returns an extent at a fraction of the content height.
// Panics if fraction is negative.
func Proportional(fraction float64) ProportionalExtent {
	if fraction < 0 {
		panic(fmt.Sprintf("sheet: proportional extent must not be negative, got %v", fraction))
	}
	return ProportionalExtent{fraction: fraction}
}

// Fraction returns the content-height fraction this extent resolves with.
func (e ProportionalExtent) Fraction() float64 { return e.fraction }

// Resolve implements Extent.
func (e ProportionalExtent) Resolve(content Size) float64 {
	return e.fraction * content.Height
}
