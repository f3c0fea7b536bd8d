package tokens

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/randalmurphal/charkit/segment"
)

// Measurement summarises a text for reports.
type Measurement struct {
	Weight    int             `json:"weight"`
	Display   int             `json:"display"`
	Units     int             `json:"units"`
	Runes     int             `json:"runes"`
	Graphemes int             `json:"graphemes"`
	Tokens    []segment.Token `json:"tokens,omitempty"`
}

// Measure segments and weighs text with counter.
func Measure(text string, counter *WeightedCounter) Measurement {
	if counter == nil {
		counter = NewWeightedCounter()
	}
	toks := segment.Segment(text)
	weight := counter.Total(toks)
	return Measurement{
		Weight:    weight,
		Display:   DisplayCount(weight),
		Units:     segment.Units(text),
		Runes:     utf8.RuneCountInString(text),
		Graphemes: uniseg.GraphemeClusterCount(text),
		Tokens:    toks,
	}
}
