// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleInput Action = "toggle_input"

	// Sheet gestures
	ActionDragUp    Action = "drag_up"
	ActionDragDown  Action = "drag_down"
	ActionRelease   Action = "release"
	ActionFlingUp   Action = "fling_up"
	ActionFlingDown Action = "fling_down"
	ActionSettle    Action = "settle"

	// Detent navigation
	ActionNextDetent Action = "next_detent"
	ActionPrevDetent Action = "prev_detent"
	ActionExpand     Action = "expand"
	ActionCollapse   Action = "collapse"
)
