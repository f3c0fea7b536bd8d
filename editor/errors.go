package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors for editor operations.
var (
	// ErrOverflow indicates a field's weighted length exceeds its maximum.
	ErrOverflow = errors.New("weighted length exceeds maximum")

	// ErrNoSelection indicates a caret-dependent operation ran without an
	// active selection.
	ErrNoSelection = errors.New("no active selection")

	// ErrUnknownField indicates an event named a field that is not registered.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidField indicates a malformed field descriptor.
	ErrInvalidField = errors.New("invalid field descriptor")

	// ErrElementNotFound indicates the page has no element for a field.
	ErrElementNotFound = errors.New("element not found")
)

// OverflowError reports a field whose weight exceeds its maximum.
type OverflowError struct {
	Field     string
	Weight    int
	MaxWeight int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("field %s: weight %d exceeds %d", e.Field, e.Weight, e.MaxWeight)
}

// Unwrap returns ErrOverflow for errors.Is support.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Error wraps a page or event failure with the field and operation.
type Error struct {
	Field string // Field identifier
	Op    string // Operation that failed ("input", "paste", "submit")
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
