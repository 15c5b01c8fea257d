// Package errmsg formats the failure messages shown to users, so every
// caller reports errors the same way.
package errmsg

import "fmt"

// Op names an operation for failure messages.
type Op string

const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// Saved state operations
	OpStateOpen Op = "open state database"
	OpStateSave Op = "save position"

	// Trace output
	OpTraceRun Op = "run trace"
)

// Format renders err as a user-facing message for op.
// A nil error renders as the empty string.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format with a quoted subject, such as a path or mode name.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
