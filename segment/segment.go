package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	// Plain is any text that is not CJK, whitespace, or a URL.
	Plain Kind = iota

	// Whitespace is a maximal run of whitespace code points.
	Whitespace

	// CJK is a maximal run of Chinese, Japanese, or Korean code points.
	CJK

	// URL is an http or https URL.
	URL
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case CJK:
		return "cjk"
	case URL:
		return "url"
	default:
		return "plain"
	}
}

// Token is a non-empty piece of text with its classification.
type Token struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Units returns the token's length in UTF-16 code units.
func (t Token) Units() int {
	return Units(t.Text)
}

// urlPattern matches URLs using the restricted ASCII character class.
var urlPattern = regexp.MustCompile(`https?://[-_.!~*'()a-zA-Z0-9;/?:@&=+$,%#]+`)

// Segment splits text into an ordered, lossless sequence of tokens.
func Segment(text string) []Token {
	if text == "" {
		return nil
	}

	var toks []Token
	chunkStart := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		var run Kind
		switch {
		case IsCJK(r):
			run = CJK
		case IsSpace(r):
			run = Whitespace
		default:
			i += size
			continue
		}

		toks = appendChunk(toks, text[chunkStart:i])
		end := scanRun(text, i+size, run)
		toks = append(toks, Token{Text: text[i:end], Kind: run})
		i = end
		chunkStart = end
	}
	return appendChunk(toks, text[chunkStart:])
}

// scanRun returns the byte offset where the run of the given kind starting
// before pos ends.
func scanRun(text string, pos int, kind Kind) int {
	match := IsCJK
	if kind == Whitespace {
		match = IsSpace
	}
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !match(r) {
			break
		}
		pos += size
	}
	return pos
}

// appendChunk splits an untyped chunk on URLs and appends the pieces.
func appendChunk(toks []Token, chunk string) []Token {
	if chunk == "" {
		return toks
	}

	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(chunk, -1) {
		if loc[0] > last {
			toks = append(toks, Token{Text: chunk[last:loc[0]], Kind: Plain})
		}
		toks = append(toks, Token{Text: chunk[loc[0]:loc[1]], Kind: URL})
		last = loc[1]
	}
	if last < len(chunk) {
		toks = append(toks, Token{Text: chunk[last:], Kind: Plain})
	}
	return toks
}

// Join concatenates token texts in order.
func Join(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

// IsURL reports whether s contains a URL match.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}
