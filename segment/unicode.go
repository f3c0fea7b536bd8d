package segment

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// cjkPunctuation covers CJK Symbols and Punctuation and CJK Compatibility Forms.
var cjkPunctuation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x303F, Stride: 1},
		{Lo: 0xFE30, Hi: 0xFE4F, Stride: 1},
	},
}

// CJKTable is the set of code points counted as CJK.
var CJKTable = rangetable.Merge(
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	cjkPunctuation,
)

// IsCJK reports whether r belongs to a CJK script or a CJK punctuation block.
func IsCJK(r rune) bool {
	return unicode.Is(CJKTable, r)
}

// IsSpace reports whether r is whitespace in the browser sense: Unicode
// White_Space without NEL, plus the byte order mark.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	if r == '\u0085' {
		return false
	}
	return unicode.Is(unicode.White_Space, r)
}

// Units returns the length of s in UTF-16 code units.
func Units(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// SplitUnits splits s after n UTF-16 code units. n is clamped to the length
// of s. An offset that falls between the two halves of a surrogate pair is
// rounded down so the code point stays in tail.
func SplitUnits(s string, n int) (head, tail string) {
	if n <= 0 {
		return "", s
	}
	units := 0
	for i, r := range s {
		w := runeUnits(r)
		if units+w > n {
			return s[:i], s[i:]
		}
		units += w
	}
	return s, ""
}

// ByteOffset converts a UTF-16 offset into s to a byte offset, clamped to
// [0, len(s)].
func ByteOffset(s string, n int) int {
	head, _ := SplitUnits(s, n)
	return len(head)
}

func runeUnits(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
