package truncate

import (
	"github.com/randalmurphal/charkit/segment"
	"github.com/randalmurphal/charkit/tokens"
)

// Result is the outcome of splitting text at a weight limit.
// Kept + Exceeded always equals the input text.
type Result struct {
	// Kept is the in-limit prefix.
	Kept string `json:"kept"`
	// Exceeded is the out-of-limit suffix. Empty unless Overflowing.
	Exceeded string `json:"exceeded"`
	// Weight is the total weight of the whole text.
	Weight int `json:"weight"`
	// Overflowing is true if Weight exceeds the limit.
	Overflowing bool `json:"overflowing"`
}

// Text returns the full text the result was split from.
func (r Result) Text() string {
	return r.Kept + r.Exceeded
}

// Splitter splits text into a kept prefix and an exceeded suffix.
type Splitter struct {
	counter   *tokens.WeightedCounter
	maxWeight int
}

// New creates a splitter for the given limit using the default counter.
// A maxWeight <= 0 uses tokens.DefaultMaxWeight.
func New(maxWeight int) *Splitter {
	if maxWeight <= 0 {
		maxWeight = tokens.DefaultMaxWeight
	}
	return &Splitter{
		counter:   tokens.NewWeightedCounter(),
		maxWeight: maxWeight,
	}
}

// NewForBudget creates a splitter sharing the budget's limit and counter.
func NewForBudget(b *tokens.Budget) *Splitter {
	return &Splitter{
		counter:   b.Counter(),
		maxWeight: b.MaxWeight,
	}
}

// WithCounter sets a custom counter.
func (s *Splitter) WithCounter(counter *tokens.WeightedCounter) *Splitter {
	if counter != nil {
		s.counter = counter
	}
	return s
}

// Split segments text and splits it at the splitter's limit.
func (s *Splitter) Split(text string) Result {
	return SplitTokens(segment.Segment(text), s.maxWeight, s.counter)
}

// MaxWeight returns the splitter's limit.
func (s *Splitter) MaxWeight() int {
	return s.maxWeight
}

// Counter returns the splitter's counter.
func (s *Splitter) Counter() *tokens.WeightedCounter {
	return s.counter
}
