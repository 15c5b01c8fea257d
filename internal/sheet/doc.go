// Package sheet implements the position state machine for a draggable,
// physically animated sheet surface.
//
// A Controller owns the sheet's offset (the distance from the bottom edge
// of the viewport to the top of the sheet, in cells), the resolved offset
// bounds, and the activity that decides how the offset evolves: idle,
// dragging, ballistic motion under a physics simulation, or a timed
// animation. The host delivers content and viewport dimensions as they are
// measured and drives time with Tick; offset changes reach it through
// Listen.
//
// Rendering, input recognition, and scheduling belong to the host program;
// the physics policy is pluggable through the Physics interface.
package sheet
