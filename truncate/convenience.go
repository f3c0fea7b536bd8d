package truncate

import (
	"github.com/randalmurphal/charkit/segment"
	"github.com/randalmurphal/charkit/tokens"
)

// Split splits text at maxWeight using the default counter.
func Split(text string, maxWeight int) Result {
	return SplitTokens(segment.Segment(text), maxWeight, nil)
}

// ToWeight returns the part of text that fits within maxWeight.
func ToWeight(text string, maxWeight int) string {
	return Split(text, maxWeight).Kept
}

// Fits reports whether text fits within maxWeight using the default counter.
func Fits(text string, maxWeight int) bool {
	return tokens.NewWeightedCounter().FitsInLimit(text, maxWeight)
}

// ToLength cuts text to fit within maxWeight and appends suffix when it was
// cut. The suffix's own weight is reserved from the limit.
func ToLength(text string, maxWeight int, suffix string) string {
	r := Split(text, maxWeight)
	if !r.Overflowing {
		return text
	}
	reserve := tokens.EstimateWeight(suffix)
	if reserve >= maxWeight {
		return ToWeight(suffix, maxWeight)
	}
	return ToWeight(text, maxWeight-reserve) + suffix
}
