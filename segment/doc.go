// Package segment splits text into typed tokens for weighted counting.
//
// Segmentation is lossless: concatenating the Text of every token returned by
// Segment, in order, reproduces the input exactly. Tokens are never empty.
//
// Splitting happens in two phases. The first phase walks code points and cuts
// out maximal runs of CJK code points and maximal runs of whitespace. The
// second phase looks for http and https URLs inside whatever is left:
//
//	toks := segment.Segment("see https://example.com 今日")
//	// [Plain "see"] [Whitespace " "] [URL "https://example.com"]
//	// [Whitespace " "] [CJK "今日"]
//
// Because CJK and whitespace runs are cut first and never revisited, a URL
// that touches a CJK run on the left is still found, but one that contains
// CJK code points is broken at the first of them.
//
// # Lengths
//
// Lengths are measured in UTF-16 code units, the unit browsers use for string
// length and selection offsets. Units and SplitUnits convert between that
// view and Go strings.
//
// # Location
//
// This package is part of the charkit library:
//
//	import "github.com/randalmurphal/charkit/segment"
package segment
