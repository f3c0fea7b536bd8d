package editor

import (
	"fmt"
	"strings"
)

// Element identifier suffixes shared with the markup that renders a field.
const (
	EditorSuffix   = "_editor"
	CounterSuffix  = "_counter"
	TemplateSuffix = "_template"
)

// EditorID returns the id of a field's editable surface.
func EditorID(fieldID string) string { return fieldID + EditorSuffix }

// CounterID returns the id of a field's counter display.
func CounterID(fieldID string) string { return fieldID + CounterSuffix }

// TemplateID returns the id of a field's overflow template.
func TemplateID(fieldID string) string { return fieldID + TemplateSuffix }

// FieldIDFromEditor returns the field id for an editor element id.
func FieldIDFromEditor(editorID string) (string, bool) {
	i := strings.Index(editorID, EditorSuffix)
	if i <= 0 {
		return "", false
	}
	return editorID[:i], true
}

// FieldDescriptor configures one editable field.
type FieldDescriptor struct {
	// ID identifies the field and its elements ({ID}_editor, ...).
	ID string `json:"id" yaml:"id"`
	// Name keys the validation message placeholder. Defaults to ID.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// MaxWeight is the weight limit. 0 disables the limit.
	MaxWeight int `json:"max_weight" yaml:"max_weight"`
}

// MessageKey returns the key of the field's validation message.
func (d FieldDescriptor) MessageKey() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Validate checks the descriptor.
func (d FieldDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidField)
	}
	if d.MaxWeight < 0 {
		return fmt.Errorf("%w: %s: negative max weight %d", ErrInvalidField, d.ID, d.MaxWeight)
	}
	return nil
}

// Phase is a field's position in the editing lifecycle.
type Phase int

const (
	// Idle fields have not received an editing event.
	Idle Phase = iota
	// Editing fields are being recomputed.
	Editing
	// Counted fields have an up-to-date weight and split.
	Counted
	// Validated fields were checked by a submit attempt.
	Validated
	// Submitted fields had their kept text copied to the submission value.
	Submitted
)

// String returns the phase's name.
func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Counted:
		return "counted"
	case Validated:
		return "validated"
	case Submitted:
		return "submitted"
	default:
		return "idle"
	}
}

// FieldState is the result of the last recount of a field.
// Kept + Exceeded == RawContent, and Exceeded is empty unless Overflowing.
type FieldState struct {
	ID           string `json:"id"`
	MaxWeight    int    `json:"max_weight"`
	RawContent   string `json:"raw_content"`
	TotalWeight  int    `json:"total_weight"`
	DisplayCount int    `json:"display_count"`
	Overflowing  bool   `json:"overflowing"`
	Kept         string `json:"kept"`
	Exceeded     string `json:"exceeded"`
	Phase        Phase  `json:"phase"`
}

// Overflow returns an *OverflowError for an overflowing state, nil otherwise.
func (s FieldState) Overflow() error {
	if !s.Overflowing {
		return nil
	}
	return &OverflowError{Field: s.ID, Weight: s.TotalWeight, MaxWeight: s.MaxWeight}
}
