package editor

import "github.com/randalmurphal/charkit/cursor"

// Editor is a field's editable surface.
type Editor interface {
	// Text returns the visible text, kept and exceeded regions joined.
	Text() string
	// Render replaces the content with kept text followed by an overflow
	// container holding exceeded. An empty exceeded leaves no container.
	Render(kept, exceeded string)
	// HasOverflow reports whether an overflow container is present.
	HasOverflow() bool
	// Caret returns the surface's caret.
	Caret() cursor.Model
	// InsertText replaces the current selection with plain text and moves
	// the caret after it. Returns ErrNoSelection without an active selection.
	InsertText(text string) error
}

// Counter is a field's count display.
type Counter interface {
	// Show displays the rendered label. overflowing toggles the danger state.
	Show(count int, label string, overflowing bool)
}

// Page is the rendering collaborator hosting the fields of one form.
type Page interface {
	// Editor returns the surface with id {fieldID}_editor.
	Editor(fieldID string) (Editor, error)
	// Counter returns the display with id {fieldID}_counter.
	Counter(fieldID string) (Counter, error)
	// SetValue writes the hidden submission value of a field.
	SetValue(fieldID, value string) error
	// SetMessage writes the validation message keyed by field name. An empty
	// message clears it.
	SetMessage(fieldName, message string)
}
