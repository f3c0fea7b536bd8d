package truncate

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/randalmurphal/charkit/segment"
	"github.com/randalmurphal/charkit/tokens"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		expected int
	}{
		{name: "explicit limit", max: 100, expected: 100},
		{name: "zero uses default", max: 0, expected: tokens.DefaultMaxWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.max)
			if s.MaxWeight() != tt.expected {
				t.Errorf("MaxWeight() = %d, expected %d", s.MaxWeight(), tt.expected)
			}
			if s.Counter() == nil {
				t.Error("expected default counter")
			}
		})
	}
}

func TestSplitter_WithCounter(t *testing.T) {
	custom := tokens.NewWeightedCounterWithWeights(10, 3)
	s := New(20).WithCounter(custom)

	// "日本語" weighs 9 with CJK weight 3; the URL weighs 10.
	r := s.Split("日本語http://a.b日本語")
	if r.Weight != 28 {
		t.Errorf("Weight = %d, expected 28", r.Weight)
	}
	if r.Kept != "日本語http://a.b" || r.Exceeded != "日本語" {
		t.Errorf("Split = (%q, %q)", r.Kept, r.Exceeded)
	}

	if s.WithCounter(nil).Counter() != custom {
		t.Error("WithCounter(nil) replaced the counter")
	}
}

func TestSplitter_ZeroValueCounter(t *testing.T) {
	r := New(10).WithCounter(&tokens.WeightedCounter{}).Split(strings.Repeat("字", 8))
	if r.Weight != 16 {
		t.Errorf("Weight = %d, expected 16", r.Weight)
	}
	if r.Kept != strings.Repeat("字", 5) || r.Exceeded != strings.Repeat("字", 3) {
		t.Errorf("Split = (%q, %q)", r.Kept, r.Exceeded)
	}
}

func TestNewForBudget(t *testing.T) {
	b := tokens.NewBudget(10)
	s := NewForBudget(b)
	if s.MaxWeight() != 10 || s.Counter() != b.Counter() {
		t.Errorf("NewForBudget did not share the budget's limit and counter")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		max          int
		wantKept     string
		wantExceeded string
		wantWeight   int
	}{
		{
			name:       "scenario A: short text fits",
			text:       "hello world",
			max:        280,
			wantKept:   "hello world",
			wantWeight: 11,
		},
		{
			name:         "scenario B: 150 cjk characters",
			text:         strings.Repeat("漢", 150),
			max:          280,
			wantKept:     strings.Repeat("漢", 140),
			wantExceeded: strings.Repeat("漢", 10),
			wantWeight:   300,
		},
		{
			name:       "scenario C: 60 character url",
			text:       "https://example.com/" + strings.Repeat("p", 40),
			max:        280,
			wantKept:   "https://example.com/" + strings.Repeat("p", 40),
			wantWeight: 23,
		},
		{
			name:         "plain token cut mid-way",
			text:         "hello world",
			max:          8,
			wantKept:     "hello wo",
			wantExceeded: "rld",
			wantWeight:   11,
		},
		{
			name:         "whitespace token cut mid-way",
			text:         "ab    cd",
			max:          4,
			wantKept:     "ab  ",
			wantExceeded: "  cd",
			wantWeight:   8,
		},
		{
			name:         "odd cjk budget rounds down",
			text:         "a日本語",
			max:          4,
			wantKept:     "a日",
			wantExceeded: "本語",
			wantWeight:   7,
		},
		{
			name:         "url crossing the limit moves whole",
			text:         "abc http://example.com tail",
			max:          20,
			wantKept:     "abc ",
			wantExceeded: "http://example.com tail",
			wantWeight:   4 + 23 + 1 + 4,
		},
		{
			name:         "leading url heavier than limit",
			text:         "http://example.com rest",
			max:          10,
			wantKept:     "",
			wantExceeded: "http://example.com rest",
			wantWeight:   23 + 1 + 4,
		},
		{
			name:         "tokens after the cut are exceeded even if small",
			text:         "aaaaa b",
			max:          3,
			wantKept:     "aaa",
			wantExceeded: "aa b",
			wantWeight:   7,
		},
		{
			name:       "exactly at limit is kept",
			text:       "日本",
			max:        4,
			wantKept:   "日本",
			wantWeight: 4,
		},
		{
			name:         "surrogate pair is not split",
			text:         "a😀",
			max:          2,
			wantKept:     "a",
			wantExceeded: "😀",
			wantWeight:   3,
		},
		{
			name:       "empty text",
			text:       "",
			max:        280,
			wantWeight: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Split(tt.text, tt.max)
			if r.Kept != tt.wantKept {
				t.Errorf("Kept = %q, expected %q", r.Kept, tt.wantKept)
			}
			if r.Exceeded != tt.wantExceeded {
				t.Errorf("Exceeded = %q, expected %q", r.Exceeded, tt.wantExceeded)
			}
			if r.Weight != tt.wantWeight {
				t.Errorf("Weight = %d, expected %d", r.Weight, tt.wantWeight)
			}
			if r.Overflowing != (tt.wantExceeded != "") {
				t.Errorf("Overflowing = %v with Exceeded %q", r.Overflowing, r.Exceeded)
			}
			if r.Text() != tt.text {
				t.Errorf("Kept+Exceeded = %q, expected %q", r.Text(), tt.text)
			}
		})
	}
}

// The counter keeps showing the uncapped count after a split.
func TestSplit_DisplayCountIsUncapped(t *testing.T) {
	r := Split(strings.Repeat("あ", 150), 280)
	if got := tokens.DisplayCount(r.Weight); got != 150 {
		t.Errorf("DisplayCount = %d, expected 150", got)
	}
}

var alphabet = []string{
	"a", "b", "Z", "1", ".", " ", "\n", "\t", "日", "本", "。", "한", "カ",
	"😀", "é", "http://x.y/", "https://example.com/path?q=1", "　",
}

func randomText(rng *rand.Rand) string {
	n := rng.IntN(60)
	var b strings.Builder
	for range n {
		b.WriteString(alphabet[rng.IntN(len(alphabet))])
	}
	return b.String()
}

func TestSplit_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	counter := tokens.NewWeightedCounter()

	for i := range 2000 {
		text := randomText(rng)
		max := rng.IntN(80)
		toks := segment.Segment(text)
		r := SplitTokens(toks, max, counter)

		if r.Text() != text {
			t.Fatalf("case %d: Kept+Exceeded = %q, expected %q", i, r.Text(), text)
		}

		total := counter.Total(toks)
		if total <= max {
			if r.Kept != text || r.Exceeded != "" {
				t.Fatalf("case %d: within-limit text was split: (%q, %q)", i, r.Kept, r.Exceeded)
			}
			continue
		}
		if r.Exceeded == "" {
			t.Fatalf("case %d: weight %d > %d but nothing exceeded", i, total, max)
		}

		firstAloneExceeds := counter.Weight(toks[0]) > max
		if !firstAloneExceeds || toks[0].Kind != segment.URL {
			if kw := counter.Count(r.Kept); kw > max {
				t.Fatalf("case %d: kept weight %d > %d for %q", i, kw, max, text)
			}
		} else if r.Kept != "" {
			t.Fatalf("case %d: leading oversized url left kept %q", i, r.Kept)
		}
	}
}

func TestToWeight(t *testing.T) {
	if got := ToWeight("hello world", 5); got != "hello" {
		t.Errorf("ToWeight = %q, expected %q", got, "hello")
	}
}

func TestFits(t *testing.T) {
	if !Fits("hello", 5) {
		t.Error("Fits(hello, 5) = false")
	}
	if Fits("日本語", 5) {
		t.Error("Fits(日本語, 5) = true")
	}
}

func TestToLength(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		suffix   string
		expected string
	}{
		{
			name:     "fits unchanged",
			text:     "short",
			max:      10,
			suffix:   "…",
			expected: "short",
		},
		{
			name:     "cut with suffix",
			text:     "hello world",
			max:      8,
			suffix:   "…",
			expected: "hello w…",
		},
		{
			name:     "suffix larger than limit",
			text:     "hello world",
			max:      2,
			suffix:   "...",
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLength(tt.text, tt.max, tt.suffix); got != tt.expected {
				t.Errorf("ToLength(%q, %d, %q) = %q, expected %q", tt.text, tt.max, tt.suffix, got, tt.expected)
			}
		})
	}
}

func BenchmarkSplit(b *testing.B) {
	text := strings.Repeat("Hello 世界 https://example.com/x ", 20)
	s := New(280)
	b.ResetTimer()
	for range b.N {
		s.Split(text)
	}
}
