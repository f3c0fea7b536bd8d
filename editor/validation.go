package editor

import (
	"errors"
	"log/slog"
	"sort"
)

// Validation maps field ids to whether the field is within its limit.
type Validation map[string]bool

// Aggregate builds a Validation from field states.
func Aggregate(states []FieldState) Validation {
	v := make(Validation, len(states))
	for _, st := range states {
		v[st.ID] = !st.Overflowing
	}
	return v
}

// Passed returns true if every field is within its limit.
func (v Validation) Passed() bool {
	for _, ok := range v {
		if !ok {
			return false
		}
	}
	return true
}

// Failing returns the ids of overflowing fields, sorted.
func (v Validation) Failing() []string {
	var ids []string
	for id, ok := range v {
		if !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Outcome is the result of a submit attempt.
type Outcome struct {
	// Submitted is true if every field passed and the values were written.
	Submitted bool
	// Validation holds the per-field result of the attempt.
	Validation Validation
	// Values holds the submission value written for each field. Nil when
	// the submission was blocked.
	Values map[string]string
}

// Submit validates every registered field.
//
// When all fields are within their limits, each field's kept text is written
// to its submission value, messages are cleared, field state is discarded and
// the outcome reports Submitted. Otherwise nothing is written, overflowing
// fields get the overflow message, compliant fields have theirs cleared, and
// the returned error joins one *OverflowError per overflowing field.
//
// Fields that never received an editing event are counted from the page's
// current text.
func (c *Controller) Submit() (Outcome, error) {
	states := make([]FieldState, 0, len(c.fields))
	for _, f := range c.fields {
		st, ok := c.states[f.ID]
		if !ok {
			ed, err := c.page.Editor(f.ID)
			if err != nil {
				return Outcome{}, &Error{Field: f.ID, Op: string(EventSubmit), Err: err}
			}
			fresh := c.evaluate(f, ed.Text())
			st = &fresh
			c.states[f.ID] = st
		}
		st.Phase = Validated
		states = append(states, *st)
	}

	v := Aggregate(states)
	if !v.Passed() {
		var errs []error
		for i, f := range c.fields {
			st := states[i]
			if st.Overflowing {
				c.page.SetMessage(f.MessageKey(), c.engine.MustRender(c.overflowMessage, c.variables(f, st)))
				errs = append(errs, st.Overflow())
			} else {
				c.page.SetMessage(f.MessageKey(), "")
			}
			c.states[f.ID].Phase = Editing
		}
		c.logger.Debug("submit blocked", slog.Any("fields", v.Failing()))
		return Outcome{Validation: v}, errors.Join(errs...)
	}

	values := make(map[string]string, len(c.fields))
	for i, f := range c.fields {
		if err := c.page.SetValue(f.ID, states[i].Kept); err != nil {
			return Outcome{Validation: v}, &Error{Field: f.ID, Op: string(EventSubmit), Err: err}
		}
		c.page.SetMessage(f.MessageKey(), "")
		values[f.ID] = states[i].Kept
	}
	c.logger.Debug("submit passed", slog.Int("fields", len(values)))
	c.Reset()
	return Outcome{Submitted: true, Validation: v, Values: values}, nil
}
