package segment

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "empty string",
			text: "",
			want: nil,
		},
		{
			name: "plain words",
			text: "hello world",
			want: []Token{
				{Text: "hello", Kind: Plain},
				{Text: " ", Kind: Whitespace},
				{Text: "world", Kind: Plain},
			},
		},
		{
			name: "cjk run between plain text",
			text: "abc日本語def",
			want: []Token{
				{Text: "abc", Kind: Plain},
				{Text: "日本語", Kind: CJK},
				{Text: "def", Kind: Plain},
			},
		},
		{
			name: "mixed kana and hangul form one run",
			text: "ひらがなカタカナ한국어",
			want: []Token{
				{Text: "ひらがなカタカナ한국어", Kind: CJK},
			},
		},
		{
			name: "cjk punctuation joins the run",
			text: "こんにちは。世界",
			want: []Token{
				{Text: "こんにちは。世界", Kind: CJK},
			},
		},
		{
			name: "whitespace run keeps newlines and tabs",
			text: "a \t\n b",
			want: []Token{
				{Text: "a", Kind: Plain},
				{Text: " \t\n ", Kind: Whitespace},
				{Text: "b", Kind: Plain},
			},
		},
		{
			name: "url surrounded by spaces",
			text: "see https://example.com/a?b=c now",
			want: []Token{
				{Text: "see", Kind: Plain},
				{Text: " ", Kind: Whitespace},
				{Text: "https://example.com/a?b=c", Kind: URL},
				{Text: " ", Kind: Whitespace},
				{Text: "now", Kind: Plain},
			},
		},
		{
			name: "url glued to plain prefix",
			text: "xhttp://a.b",
			want: []Token{
				{Text: "x", Kind: Plain},
				{Text: "http://a.b", Kind: URL},
			},
		},
		{
			name: "url stops at disallowed character",
			text: "http://a.b<c>",
			want: []Token{
				{Text: "http://a.b", Kind: URL},
				{Text: "<c>", Kind: Plain},
			},
		},
		{
			name: "two urls in one chunk",
			text: "http://a.b,https://c.d",
			want: []Token{
				{Text: "http://a.b,https://c.d", Kind: URL},
			},
		},
		{
			name: "scheme without body is plain",
			text: "https://",
			want: []Token{
				{Text: "https://", Kind: Plain},
			},
		},
		{
			name: "ideographic space after ascii space stays whitespace",
			text: "a 　b",
			want: []Token{
				{Text: "a", Kind: Plain},
				{Text: " 　", Kind: Whitespace},
				{Text: "b", Kind: Plain},
			},
		},
		{
			name: "ideographic space alone is cjk punctuation",
			text: "a　b",
			want: []Token{
				{Text: "a", Kind: Plain},
				{Text: "　", Kind: CJK},
				{Text: "b", Kind: Plain},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// URLs are matched only in chunks left over after CJK and whitespace runs are
// cut, so the CJK tail of an internationalised URL is never part of the URL.
func TestSegment_URLNextToCJK(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "url directly after cjk is detected",
			text: "見てhttps://example.com",
			want: []Token{
				{Text: "見て", Kind: CJK},
				{Text: "https://example.com", Kind: URL},
			},
		},
		{
			name: "url between cjk runs is detected",
			text: "前http://a.b後",
			want: []Token{
				{Text: "前", Kind: CJK},
				{Text: "http://a.b", Kind: URL},
				{Text: "後", Kind: CJK},
			},
		},
		{
			name: "cjk path is split off the url",
			text: "https://ja.wikipedia.org/wiki/日本",
			want: []Token{
				{Text: "https://ja.wikipedia.org/wiki/", Kind: URL},
				{Text: "日本", Kind: CJK},
			},
		},
		{
			name: "fullwidth colon scheme is not a url",
			text: "https：//example.com",
			want: []Token{
				{Text: "https：//example.com", Kind: Plain},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestSegment_Lossless(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"  leading and trailing  ",
		"日本語とEnglishが混ざった文章です。",
		"see https://example.com/path?q=1#frag, then 次へ",
		"tabs\tand\nnewlines\r\n",
		"emoji 😀 and 한국어",
		"\xff\xfe invalid bytes",
		strings.Repeat("あa ", 100),
	}

	for _, in := range inputs {
		toks := Segment(in)
		if got := Join(toks); got != in {
			t.Errorf("Join(Segment(%q)) = %q", in, got)
		}
		for i, tok := range toks {
			if tok.Text == "" {
				t.Errorf("Segment(%q) token %d is empty", in, i)
			}
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Plain, "plain"},
		{Whitespace, "whitespace"},
		{CJK, "cjk"},
		{URL, "url"},
		{Kind(99), "plain"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}

func BenchmarkSegment(b *testing.B) {
	text := strings.Repeat("Hello 世界 https://example.com/x ", 20)
	b.ResetTimer()
	for range b.N {
		Segment(text)
	}
}
