// Package htmlform runs the editor engine against a rendered HTML form.
//
// The markup convention for a field with id "Body" is:
//
//	<input type="hidden" id="Body" name="Body" value="">
//	<div id="Body_editor" class="editor" contenteditable="true" data-max-length="280"></div>
//	<p><span id="Body_counter">0</span>/140 文字</p>
//	<span class="field-validation-valid" data-valmsg-for="Body"></span>
//	<template id="Body_template"><span class="exceeded"></span></template>
//
// A Form discovers its fields from that markup and implements editor.Page by
// rewriting the parsed document, so a controller can replay edits server side
// and the resulting HTML can be inspected or served.
package htmlform

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/randalmurphal/charkit/cursor"
	"github.com/randalmurphal/charkit/editor"
	"github.com/randalmurphal/charkit/segment"
)

// Selectors and classes used by the markup convention.
const (
	EditorSelector  = ".editor[contenteditable]"
	MessageAttr     = "data-valmsg-for"
	MaxLengthAttr   = "data-max-length"
	DangerClass     = "text-danger"
	MessageError    = "field-validation-error"
	MessageValid    = "field-validation-valid"
	counterLabelKey = "aria-label"
)

// Form is an editor.Page over a parsed HTML document.
type Form struct {
	doc     *goquery.Document
	editors map[string]*Editor
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Form, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Form{doc: doc, editors: make(map[string]*Editor)}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Form, error) {
	return Parse(strings.NewReader(s))
}

// Document returns the underlying document.
func (f *Form) Document() *goquery.Document {
	return f.doc
}

// HTML renders the current document.
func (f *Form) HTML() (string, error) {
	return f.doc.Html()
}

// Fields discovers the editable fields in document order.
// A missing or malformed data-max-length leaves the field unlimited.
func (f *Form) Fields() []editor.FieldDescriptor {
	var fields []editor.FieldDescriptor

	f.doc.Find(EditorSelector).Each(func(_ int, sel *goquery.Selection) {
		editorID, _ := sel.Attr("id")
		id, ok := editor.FieldIDFromEditor(editorID)
		if !ok {
			slog.Debug("skipping editor without field id", slog.String("id", editorID))
			return
		}

		d := editor.FieldDescriptor{ID: id}
		if raw, ok := sel.Attr(MaxLengthAttr); ok {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || n < 0 {
				slog.Warn("invalid max length",
					slog.String("field", id),
					slog.String("value", raw))
			} else {
				d.MaxWeight = n
			}
		}
		if name, ok := f.byID(id).Filter("input").Attr("name"); ok && name != "" {
			d.Name = name
		}
		fields = append(fields, d)
	})

	return fields
}

// Controller creates an editor controller for every discovered field.
func (f *Form) Controller(opts ...editor.Option) (*editor.Controller, error) {
	return editor.New(f, f.Fields(), opts...)
}

// Editor returns the editable surface of a field.
func (f *Form) Editor(fieldID string) (editor.Editor, error) {
	return f.FieldEditor(fieldID)
}

// FieldEditor returns the concrete editor of a field.
func (f *Form) FieldEditor(fieldID string) (*Editor, error) {
	if ed, ok := f.editors[fieldID]; ok {
		return ed, nil
	}

	sel := f.byID(editor.EditorID(fieldID))
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", editor.ErrElementNotFound, editor.EditorID(fieldID))
	}
	ed := newEditor(sel, f.byID(editor.TemplateID(fieldID)))
	f.editors[fieldID] = ed
	return ed, nil
}

// Counter returns the counter display of a field.
func (f *Form) Counter(fieldID string) (editor.Counter, error) {
	sel := f.byID(editor.CounterID(fieldID))
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", editor.ErrElementNotFound, editor.CounterID(fieldID))
	}
	return &Counter{sel: sel}, nil
}

// SetValue writes the submission value into the field's hidden input.
func (f *Form) SetValue(fieldID, value string) error {
	input := f.byID(fieldID).Filter("input")
	if input.Length() == 0 {
		return fmt.Errorf("%w: input %s", editor.ErrElementNotFound, fieldID)
	}
	input.SetAttr("value", value)
	return nil
}

// Value returns the value of a field's hidden input.
func (f *Form) Value(fieldID string) (string, bool) {
	return f.byID(fieldID).Filter("input").Attr("value")
}

// SetMessage sets the validation message placeholder for a field name. An
// empty message clears it.
func (f *Form) SetMessage(fieldName, message string) {
	sel := f.message(fieldName)
	if sel.Length() == 0 {
		slog.Debug("no validation placeholder", slog.String("name", fieldName))
		return
	}
	sel.SetText(message)
	if message == "" {
		sel.RemoveClass(MessageError).AddClass(MessageValid)
	} else {
		sel.RemoveClass(MessageValid).AddClass(MessageError)
	}
}

// Message returns the text of a field's validation placeholder.
func (f *Form) Message(fieldName string) string {
	return f.message(fieldName).Text()
}

func (f *Form) message(fieldName string) *goquery.Selection {
	return f.doc.Find("[" + MessageAttr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr(MessageAttr)
		return v == fieldName
	})
}

// byID matches ids literally, without selector escaping.
func (f *Form) byID(id string) *goquery.Selection {
	return f.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
}

// Counter is the counter display of a field.
//
// The counter element holds the display count. Its parent gets the danger
// class while the field overflows, and the rendered label is exposed as the
// element's aria-label.
type Counter struct {
	sel *goquery.Selection
}

// Show implements editor.Counter.
func (c *Counter) Show(count int, label string, overflowing bool) {
	c.sel.SetText(strconv.Itoa(count))
	c.sel.SetAttr(counterLabelKey, label)
	if overflowing {
		c.sel.Parent().AddClass(DangerClass)
	} else {
		c.sel.Parent().RemoveClass(DangerClass)
	}
}

// Editor is the editable surface of a field: a kept text node optionally
// followed by an overflow span cloned from the field's template.
type Editor struct {
	sel   *goquery.Selection
	tmpl  *goquery.Selection
	caret *cursor.Memory
}

func newEditor(sel, tmpl *goquery.Selection) *Editor {
	return &Editor{
		sel:   sel,
		tmpl:  tmpl,
		caret: cursor.NewMemory(segment.Units(sel.Text())),
	}
}

// Text returns the text content of the surface.
func (e *Editor) Text() string {
	return e.sel.Text()
}

// regions returns the kept text and the overflow span's text.
func (e *Editor) regions() (kept, exceeded string) {
	full := e.sel.Text()
	exceeded = e.sel.Find("span").Text()
	return strings.TrimSuffix(full, exceeded), exceeded
}

// Render replaces the content with kept text and, when exceeded is not
// empty, an overflow span holding it.
func (e *Editor) Render(kept, exceeded string) {
	e.sel.SetText(kept)
	if exceeded == "" {
		return
	}

	span := e.tmpl.Find("span").First().Clone()
	if span.Length() == 0 {
		e.sel.AppendHtml("<span></span>")
		e.sel.Find("span").Last().SetText(exceeded)
		return
	}
	span.SetText(exceeded)
	e.sel.AppendSelection(span)
}

// HasOverflow reports whether the surface holds an overflow span.
func (e *Editor) HasOverflow() bool {
	return e.sel.Find("span").Length() > 0
}

// Caret returns the surface's caret.
func (e *Editor) Caret() cursor.Model {
	return e.caret
}

// CaretMemory returns the concrete caret.
func (e *Editor) CaretMemory() *cursor.Memory {
	return e.caret
}

// InsertText inserts plain text at the caret inside the region the caret is
// in, and moves the caret after it.
func (e *Editor) InsertText(text string) error {
	a, ok := e.caret.Anchor()
	if !ok {
		return editor.ErrNoSelection
	}

	kept, exceeded := e.regions()
	pos := cursor.Relative(a, segment.Units(kept), segment.Units(exceeded))
	target := &kept
	if pos.Region == cursor.Exceeded {
		target = &exceeded
	}

	at := segment.ByteOffset(*target, pos.Offset)
	*target = (*target)[:at] + text + (*target)[at:]
	pos.Offset += segment.Units(text)

	e.Render(kept, exceeded)
	e.caret.SetPosition(pos, segment.Units(kept))
	return nil
}

// SetText replaces the content with unsplit text and puts the caret at its
// end, as if the user had typed it.
func (e *Editor) SetText(text string) {
	e.sel.SetText(text)
	e.caret.MoveTo(cursor.Anchor{Offset: segment.Units(text)})
}
