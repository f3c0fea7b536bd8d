// Package truncate splits text at a weight limit without losing characters.
//
// The result of a split is a kept prefix, which fits within the limit, and an
// exceeded suffix holding everything else. Kept + Exceeded is always the
// original text, so an editor can show the overflow instead of deleting it.
//
// # Basic Usage
//
//	s := truncate.New(280)
//	r := s.Split(text)
//	if r.Overflowing {
//	    render(r.Kept, r.Exceeded)
//	}
//
// # Splitting rules
//
// Whole tokens are kept while they fit. The first token that crosses the limit
// is cut at the remaining budget: a plain or whitespace token keeps one unit
// per remaining weight, a CJK token keeps one unit per two. A URL is never cut;
// it moves to the exceeded part whole. Every later token is exceeded.
//
// # Convenience Functions
//
//	r := truncate.Split(text, 280)              // default weights
//	kept := truncate.ToWeight(text, 280)        // kept part only
//	short := truncate.ToLength(text, 40, "…")   // cut with a suffix
//	ok := truncate.Fits(text, 280)
package truncate
