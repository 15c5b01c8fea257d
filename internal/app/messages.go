// Package app contains the root model, messages, and update loop for the TUI.
package app

import "time"

// FrameMsg drives the sheet simulation. It is rescheduled for as long as
// the controller reports an animating status.
type FrameMsg time.Time

// AnimationDoneMsg is sent when a detent animation completes or is
// superseded by another motion.
type AnimationDoneMsg struct{}
