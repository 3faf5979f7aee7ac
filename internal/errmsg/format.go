// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Content
	OpContentLoad     Op = "load portfolio content"
	OpContentValidate Op = "validate portfolio content"

	// Configuration
	OpConfigLoad Op = "load configuration"

	// Navigation state
	OpStateOpen  Op = "open state database"
	OpStateLoad  Op = "restore navigation"
	OpStateReset Op = "reset navigation"

	// Server
	OpServerStart    Op = "start server"
	OpServerShutdown Op = "shut down server"
	OpRenderPage     Op = "render page"

	// Initialization
	OpInitialize Op = "initialize application"
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

// Wrap returns err prefixed with the operation, or nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
