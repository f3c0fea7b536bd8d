package template

import "errors"

var (
	// ErrEmpty is returned for an empty template string.
	ErrEmpty = errors.New("empty message template")

	// ErrParse wraps text/template parse failures.
	ErrParse = errors.New("parse message template")

	// ErrExecute wraps text/template execution failures.
	ErrExecute = errors.New("render message template")

	// ErrVariable is returned when a template uses a variable that is not
	// provided.
	ErrVariable = errors.New("unknown template variable")
)
