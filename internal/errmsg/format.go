// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Profile operations
	OpProfileLoad   Op = "load profile"
	OpProfileSave   Op = "save profile"
	OpProfileDelete Op = "delete profile"
	OpProfileRename Op = "rename profile"
	OpProfileCopy   Op = "copy profile"

	// Binding operations
	OpBindingSet   Op = "set binding"
	OpBindingClear Op = "clear binding"

	// Controller operations
	OpControllerConnect Op = "connect controller"
	OpControllerAssign  Op = "assign profile to controller"

	// Configuration
	OpConfigLoad Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
