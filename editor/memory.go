package editor

import (
	"fmt"

	"github.com/randalmurphal/charkit/cursor"
	"github.com/randalmurphal/charkit/segment"
)

// MemoryPage is a headless Page for tests and server-side use.
type MemoryPage struct {
	editors  map[string]*MemoryEditor
	counters map[string]*MemoryCounter

	// Values holds the submission values written by SetValue.
	Values map[string]string
	// Messages holds the validation messages keyed by field name.
	Messages map[string]string
}

// NewMemoryPage creates an empty page.
func NewMemoryPage() *MemoryPage {
	return &MemoryPage{
		editors:  make(map[string]*MemoryEditor),
		counters: make(map[string]*MemoryCounter),
		Values:   make(map[string]string),
		Messages: make(map[string]string),
	}
}

// AddField adds an editor and counter for fieldID holding text, with the
// caret at the end of the text.
func (p *MemoryPage) AddField(fieldID, text string) *MemoryEditor {
	ed := NewMemoryEditor(text)
	p.editors[fieldID] = ed
	p.counters[fieldID] = &MemoryCounter{}
	return ed
}

// Editor returns the editor of a field.
func (p *MemoryPage) Editor(fieldID string) (Editor, error) {
	ed, ok := p.editors[fieldID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, EditorID(fieldID))
	}
	return ed, nil
}

// MemoryEditor returns the concrete editor of a field, or nil.
func (p *MemoryPage) MemoryEditor(fieldID string) *MemoryEditor {
	return p.editors[fieldID]
}

// Counter returns the counter of a field.
func (p *MemoryPage) Counter(fieldID string) (Counter, error) {
	c, ok := p.counters[fieldID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, CounterID(fieldID))
	}
	return c, nil
}

// MemoryCounter returns the concrete counter of a field, or nil.
func (p *MemoryPage) MemoryCounter(fieldID string) *MemoryCounter {
	return p.counters[fieldID]
}

// SetValue records the submission value of a field.
func (p *MemoryPage) SetValue(fieldID, value string) error {
	if _, ok := p.editors[fieldID]; !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, fieldID)
	}
	p.Values[fieldID] = value
	return nil
}

// SetMessage records a validation message. An empty message removes it.
func (p *MemoryPage) SetMessage(fieldName, message string) {
	if message == "" {
		delete(p.Messages, fieldName)
		return
	}
	p.Messages[fieldName] = message
}

// MemoryEditor is a headless Editor holding a kept region and an optional
// overflow region.
type MemoryEditor struct {
	kept     string
	exceeded string
	caret    *cursor.Memory

	// Renders counts Render calls.
	Renders int
}

// NewMemoryEditor creates an editor holding text with the caret at its end.
func NewMemoryEditor(text string) *MemoryEditor {
	return &MemoryEditor{
		kept:  text,
		caret: cursor.NewMemory(segment.Units(text)),
	}
}

// Text returns the kept and exceeded regions joined.
func (e *MemoryEditor) Text() string {
	return e.kept + e.exceeded
}

// Kept returns the kept region.
func (e *MemoryEditor) Kept() string { return e.kept }

// Exceeded returns the overflow region.
func (e *MemoryEditor) Exceeded() string { return e.exceeded }

// Render replaces the content.
func (e *MemoryEditor) Render(kept, exceeded string) {
	e.kept = kept
	e.exceeded = exceeded
	e.Renders++
}

// HasOverflow reports whether there is an overflow region.
func (e *MemoryEditor) HasOverflow() bool {
	return e.exceeded != ""
}

// Caret returns the editor's caret.
func (e *MemoryEditor) Caret() cursor.Model {
	return e.caret
}

// CaretMemory returns the concrete caret for test control.
func (e *MemoryEditor) CaretMemory() *cursor.Memory {
	return e.caret
}

// InsertText inserts text at the caret, inside the region the caret is in,
// and moves the caret after it.
func (e *MemoryEditor) InsertText(text string) error {
	a, ok := e.caret.Anchor()
	if !ok {
		return ErrNoSelection
	}

	keptLen := segment.Units(e.kept)
	pos := cursor.Relative(a, keptLen, segment.Units(e.exceeded))
	target := &e.kept
	if pos.Region == cursor.Exceeded {
		target = &e.exceeded
	}

	at := segment.ByteOffset(*target, pos.Offset)
	*target = (*target)[:at] + text + (*target)[at:]
	pos.Offset += segment.Units(text)
	e.caret.SetPosition(pos, keptLen)
	return nil
}

// Type is InsertText for simulated keystrokes.
func (e *MemoryEditor) Type(text string) error {
	return e.InsertText(text)
}

// SetText replaces the whole content with unsplit text and puts the caret at
// its end.
func (e *MemoryEditor) SetText(text string) {
	e.kept = text
	e.exceeded = ""
	e.caret.MoveTo(cursor.Anchor{Offset: segment.Units(text)})
}

// MemoryCounter is a headless Counter recording what it shows.
type MemoryCounter struct {
	Count       int
	Label       string
	Overflowing bool
	Shows       int
}

// Show records the displayed values.
func (c *MemoryCounter) Show(count int, label string, overflowing bool) {
	c.Count = count
	c.Label = label
	c.Overflowing = overflowing
	c.Shows++
}
