package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/charkit/cursor"
	"github.com/randalmurphal/charkit/segment"
	"github.com/randalmurphal/charkit/template"
	"github.com/randalmurphal/charkit/tokens"
	"github.com/randalmurphal/charkit/truncate"
)

// DefaultCounterLabel is the default counter label template.
const DefaultCounterLabel = "{{count}}/{{limit}} 文字"

// DefaultOverflowMessage is the default validation message template.
const DefaultOverflowMessage = "最大文字数を超過しています。"

// EventType identifies a user-interface event.
type EventType string

// Supported events.
const (
	EventInput          EventType = "input"
	EventCompositionEnd EventType = "compositionend"
	EventPaste          EventType = "paste"
	EventSubmit         EventType = "submit"
)

// Event is a user-interface event delivered to the controller.
type Event struct {
	Type EventType
	// FieldID names the field the event targets. Unused for submit.
	FieldID string
	// Composing is true for input events fired during IME composition.
	Composing bool
	// Data is the clipboard text of a paste event.
	Data string
}

// Option configures a Controller.
type Option func(*Controller)

// WithCounter sets the weights used for counting.
func WithCounter(counter *tokens.WeightedCounter) Option {
	return func(c *Controller) {
		if counter != nil {
			c.counter = counter
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCounterLabel sets the counter label template.
// Variables: count, limit, weight, max, over, overflowing, field.
func WithCounterLabel(tmpl string) Option {
	return func(c *Controller) {
		if tmpl != "" {
			c.counterLabel = tmpl
		}
	}
}

// WithOverflowMessage sets the validation message template.
// Variables are the same as for WithCounterLabel plus name.
func WithOverflowMessage(tmpl string) Option {
	return func(c *Controller) {
		if tmpl != "" {
			c.overflowMessage = tmpl
		}
	}
}

// WithTemplateEngine sets the engine that renders labels and messages.
func WithTemplateEngine(engine *template.Engine) Option {
	return func(c *Controller) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// Controller owns the fields of one form and handles their events.
//
// Handlers run to completion and leave every field state consistent before
// returning. A Controller is not safe for concurrent use; deliver events from
// one goroutine, or through Run.
type Controller struct {
	page   Page
	fields []FieldDescriptor
	index  map[string]int
	states map[string]*FieldState

	counter         *tokens.WeightedCounter
	engine          *template.Engine
	counterLabel    string
	overflowMessage string
	logger          *slog.Logger
}

// New creates a controller for the given fields of page.
func New(page Page, fields []FieldDescriptor, opts ...Option) (*Controller, error) {
	if page == nil {
		return nil, errors.New("page is required")
	}

	c := &Controller{
		page:            page,
		index:           make(map[string]int, len(fields)),
		states:          make(map[string]*FieldState, len(fields)),
		counter:         tokens.NewWeightedCounter(),
		counterLabel:    DefaultCounterLabel,
		overflowMessage: DefaultOverflowMessage,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = template.NewEngine()
	}
	known := c.variables(FieldDescriptor{}, FieldState{})
	for _, tmpl := range []string{c.counterLabel, c.overflowMessage} {
		vars, err := c.engine.Parse(tmpl)
		if err == nil {
			err = template.ValidateVariables(vars, known)
		}
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", tmpl, err)
		}
	}

	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidField, f.ID)
		}
		c.index[f.ID] = len(c.fields)
		c.fields = append(c.fields, f)
	}
	return c, nil
}

// Fields returns the registered field descriptors in registration order.
func (c *Controller) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(c.fields))
	copy(out, c.fields)
	return out
}

// State returns the latest state of a field. ok is false for fields that have
// not been counted since creation or the last Reset.
func (c *Controller) State(fieldID string) (FieldState, bool) {
	st, ok := c.states[fieldID]
	if !ok {
		return FieldState{}, false
	}
	return *st, true
}

// Reset discards every field state, as when the user navigates away.
func (c *Controller) Reset() {
	c.states = make(map[string]*FieldState, len(c.fields))
}

// Dispatch routes an event to its handler. Submit outcomes are only reported
// through the returned error; call Submit directly to inspect them.
func (c *Controller) Dispatch(ev Event) error {
	switch ev.Type {
	case EventInput:
		return c.HandleInput(ev.FieldID, ev.Composing)
	case EventCompositionEnd:
		return c.HandleCompositionEnd(ev.FieldID)
	case EventPaste:
		return c.HandlePaste(ev.FieldID, ev.Data)
	case EventSubmit:
		_, err := c.Submit()
		return err
	default:
		return fmt.Errorf("unsupported event type %q", ev.Type)
	}
}

// Run dispatches events one at a time until events is closed or ctx is done.
// Handler errors are logged and do not stop the loop.
func (c *Controller) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := c.Dispatch(ev); err != nil && !errors.Is(err, ErrOverflow) {
				c.logger.Warn("event failed",
					slog.String("event", string(ev.Type)),
					slog.String("field", ev.FieldID),
					slog.Any("error", err))
			}
		}
	}
}

// HandleInput recounts a field after text input. Input fired during IME
// composition is ignored; the composition end event recounts instead.
func (c *Controller) HandleInput(fieldID string, composing bool) error {
	f, err := c.field(fieldID, string(EventInput))
	if err != nil {
		return err
	}
	if composing {
		return nil
	}
	return c.recount(f, string(EventInput))
}

// HandleCompositionEnd recounts a field after IME composition ends.
func (c *Controller) HandleCompositionEnd(fieldID string) error {
	f, err := c.field(fieldID, string(EventCompositionEnd))
	if err != nil {
		return err
	}
	return c.recount(f, string(EventCompositionEnd))
}

// HandlePaste inserts text as plain text at the caret and recounts the field.
// Without an active selection the paste is ignored.
func (c *Controller) HandlePaste(fieldID, text string) error {
	f, err := c.field(fieldID, string(EventPaste))
	if err != nil {
		return err
	}
	ed, err := c.page.Editor(f.ID)
	if err != nil {
		return &Error{Field: f.ID, Op: string(EventPaste), Err: err}
	}
	if err := ed.InsertText(text); err != nil {
		if errors.Is(err, ErrNoSelection) {
			c.logger.Debug("paste ignored", slog.String("field", f.ID), slog.String("reason", err.Error()))
			return nil
		}
		return &Error{Field: f.ID, Op: string(EventPaste), Err: err}
	}
	return c.recount(f, string(EventPaste))
}

func (c *Controller) field(fieldID, op string) (FieldDescriptor, error) {
	i, ok := c.index[fieldID]
	if !ok {
		c.logger.Warn("event for unknown field", slog.String("event", op), slog.String("field", fieldID))
		return FieldDescriptor{}, &Error{Field: fieldID, Op: op, Err: ErrUnknownField}
	}
	return c.fields[i], nil
}

// evaluate counts text against f without touching the page.
func (c *Controller) evaluate(f FieldDescriptor, text string) FieldState {
	toks := segment.Segment(text)

	var r truncate.Result
	if f.MaxWeight > 0 {
		r = truncate.SplitTokens(toks, f.MaxWeight, c.counter)
	} else {
		r = truncate.Result{Kept: text, Weight: c.counter.Total(toks)}
	}

	return FieldState{
		ID:           f.ID,
		MaxWeight:    f.MaxWeight,
		RawContent:   text,
		TotalWeight:  r.Weight,
		DisplayCount: tokens.DisplayCount(r.Weight),
		Overflowing:  r.Overflowing,
		Kept:         r.Kept,
		Exceeded:     r.Exceeded,
	}
}

// recount runs the full pipeline for one field: count, split, rewrite the
// surface, restore the caret, update the counter.
func (c *Controller) recount(f FieldDescriptor, op string) error {
	ed, err := c.page.Editor(f.ID)
	if err != nil {
		return &Error{Field: f.ID, Op: op, Err: err}
	}

	prev, hadState := c.states[f.ID]
	st := c.evaluate(f, ed.Text())
	st.Phase = Editing

	if st.Overflowing || ed.HasOverflow() {
		anchor, ok := ed.Caret().Anchor()
		ed.Render(st.Kept, st.Exceeded)
		if ok {
			keptLen := segment.Units(st.Kept)
			pos := cursor.Track(anchor, keptLen, segment.Units(st.Exceeded))
			ed.Caret().SetPosition(pos, keptLen)
		}
	}

	st.Phase = Counted
	c.states[f.ID] = &st
	c.showCounter(f, st)

	if !hadState || prev.Overflowing != st.Overflowing {
		c.logger.Debug("field overflow state",
			slog.String("field", f.ID),
			slog.Int("weight", st.TotalWeight),
			slog.Int("max_weight", f.MaxWeight),
			slog.Bool("overflowing", st.Overflowing))
	}
	return nil
}

func (c *Controller) showCounter(f FieldDescriptor, st FieldState) {
	counter, err := c.page.Counter(f.ID)
	if err != nil {
		c.logger.Debug("counter unavailable", slog.String("field", f.ID), slog.Any("error", err))
		return
	}
	label := c.engine.MustRender(c.counterLabel, c.variables(f, st))
	counter.Show(st.DisplayCount, label, st.Overflowing)
}

func (c *Controller) variables(f FieldDescriptor, st FieldState) map[string]any {
	limit, over := 0, 0
	if f.MaxWeight > 0 {
		b := tokens.NewBudgetWithCounter(f.MaxWeight, c.counter)
		limit = b.DisplayLimit()
		over = b.Over(st.TotalWeight)
	}
	return map[string]any{
		"field":       f.ID,
		"name":        f.MessageKey(),
		"count":       st.DisplayCount,
		"limit":       limit,
		"weight":      st.TotalWeight,
		"max":         f.MaxWeight,
		"over":        over,
		"overflowing": st.Overflowing,
	}
}
