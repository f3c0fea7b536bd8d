package truncate

import (
	"strings"

	"github.com/randalmurphal/charkit/segment"
	"github.com/randalmurphal/charkit/tokens"
)

// SplitTokens partitions toks into the text that fits within maxWeight and
// the text past it.
//
// Tokens are kept whole while the running weight stays within maxWeight. The
// first token that crosses the limit is cut at the remaining budget, unless it
// is a URL, which is moved to Exceeded whole. Every token after that goes to
// Exceeded.
func SplitTokens(toks []segment.Token, maxWeight int, counter *tokens.WeightedCounter) Result {
	if counter == nil {
		counter = tokens.NewWeightedCounter()
	}

	var kept, exceeded strings.Builder
	before := 0
	isExceeded := false

	for _, tok := range toks {
		w := counter.Weight(tok)

		switch {
		case isExceeded:
			exceeded.WriteString(tok.Text)
		case before+w <= maxWeight:
			kept.WriteString(tok.Text)
		case tok.Kind == segment.URL:
			exceeded.WriteString(tok.Text)
			isExceeded = true
		default:
			units := counter.UnitsPerWeight(tok.Kind, maxWeight-before)
			head, tail := segment.SplitUnits(tok.Text, units)
			kept.WriteString(head)
			exceeded.WriteString(tail)
			isExceeded = true
		}
		before += w
	}

	return Result{
		Kept:        kept.String(),
		Exceeded:    exceeded.String(),
		Weight:      before,
		Overflowing: before > maxWeight,
	}
}
