package tokens

import (
	"github.com/randalmurphal/charkit/segment"
)

// DefaultURLWeight is the flat weight of any URL, regardless of its length.
const DefaultURLWeight = 23

// DefaultCJKWeight is the weight of each UTF-16 unit of CJK text.
const DefaultCJKWeight = 2

// DefaultMaxWeight is the default weight limit of a field.
const DefaultMaxWeight = 280

// Weigher assigns a weight to a single token.
type Weigher interface {
	// Weight returns the non-negative weight of tok.
	Weight(tok segment.Token) int
}

// Counter measures the weighted length of text.
type Counter interface {
	// Count returns the total weight of the given text.
	Count(text string) int
	// FitsInLimit returns true if the text's weight is at most limit.
	FitsInLimit(text string, limit int) bool
}

// WeightedCounter weighs tokens by kind: URLs are flat, CJK units count
// CJKWeight each, everything else counts 1 per UTF-16 unit. Weights <= 0 use
// the defaults, so the zero value is ready to use.
type WeightedCounter struct {
	// URLWeight is the weight of one URL token.
	URLWeight int
	// CJKWeight is the weight of each UTF-16 unit in a CJK token.
	CJKWeight int
}

// NewWeightedCounter creates a counter with the default weights (URL 23, CJK 2).
func NewWeightedCounter() *WeightedCounter {
	return &WeightedCounter{
		URLWeight: DefaultURLWeight,
		CJKWeight: DefaultCJKWeight,
	}
}

// NewWeightedCounterWithWeights creates a counter with custom weights.
// Values <= 0 fall back to the defaults.
func NewWeightedCounterWithWeights(urlWeight, cjkWeight int) *WeightedCounter {
	if urlWeight <= 0 {
		urlWeight = DefaultURLWeight
	}
	if cjkWeight <= 0 {
		cjkWeight = DefaultCJKWeight
	}
	return &WeightedCounter{
		URLWeight: urlWeight,
		CJKWeight: cjkWeight,
	}
}

// Weight returns the weight of a single token.
func (c *WeightedCounter) Weight(tok segment.Token) int {
	switch tok.Kind {
	case segment.URL:
		return c.urlWeight()
	case segment.CJK:
		return c.cjkWeight() * tok.Units()
	default:
		return tok.Units()
	}
}

func (c *WeightedCounter) urlWeight() int {
	if c.URLWeight <= 0 {
		return DefaultURLWeight
	}
	return c.URLWeight
}

func (c *WeightedCounter) cjkWeight() int {
	if c.CJKWeight <= 0 {
		return DefaultCJKWeight
	}
	return c.CJKWeight
}

// Total sums the weights of toks.
func (c *WeightedCounter) Total(toks []segment.Token) int {
	total := 0
	for _, tok := range toks {
		total += c.Weight(tok)
	}
	return total
}

// Count returns the total weight of the given text.
func (c *WeightedCounter) Count(text string) int {
	return c.Total(segment.Segment(text))
}

// FitsInLimit returns true if the text's weight is at most limit.
func (c *WeightedCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// UnitsPerWeight converts a remaining weight budget into the number of
// UTF-16 units of a token of the given kind that fit in it. URLs are atomic
// and always report 0.
func (c *WeightedCounter) UnitsPerWeight(kind segment.Kind, budget int) int {
	if budget <= 0 {
		return 0
	}
	switch kind {
	case segment.URL:
		return 0
	case segment.CJK:
		return budget / c.cjkWeight()
	default:
		return budget
	}
}

// DisplayCount converts a weight into the count shown to the user: half the
// weight, rounded up.
func DisplayCount(weight int) int {
	if weight <= 0 {
		return 0
	}
	return (weight + 1) / 2
}

// EstimateWeight is a convenience function using the default counter.
func EstimateWeight(text string) int {
	return NewWeightedCounter().Count(text)
}

// Total sums token weights using the default counter.
func Total(toks []segment.Token) int {
	return NewWeightedCounter().Total(toks)
}
