package cli

import (
	"errors"
	"strings"
)

// ErrBlocked is returned when a submit was blocked by overflowing fields.
var ErrBlocked = errors.New("submission blocked")

// CLIError represents a user-facing error with an optional suggestion.
type CLIError struct {
	Message    string
	Suggestion string
	Cause      error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if e.Suggestion != "" {
		sb.WriteString("\n\nSuggestion: ")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a CLIError with a message and suggestion.
func NewCLIError(message, suggestion string) *CLIError {
	return &CLIError{Message: message, Suggestion: suggestion}
}

// WrapError wraps an existing error with a message and suggestion.
func WrapError(cause error, message, suggestion string) *CLIError {
	return &CLIError{Message: message, Suggestion: suggestion, Cause: cause}
}
