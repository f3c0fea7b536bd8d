package tokens

import (
	"strings"
	"testing"
)

func TestNewBudget(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		expected int
	}{
		{name: "explicit limit", max: 140, expected: 140},
		{name: "zero uses default", max: 0, expected: DefaultMaxWeight},
		{name: "negative uses default", max: -10, expected: DefaultMaxWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.max)
			if b.MaxWeight != tt.expected {
				t.Errorf("MaxWeight = %d, expected %d", b.MaxWeight, tt.expected)
			}
			if b.Counter() == nil {
				t.Error("expected counter to be initialized")
			}
		})
	}
}

func TestNewBudgetWithCounter_NilCounter(t *testing.T) {
	b := NewBudgetWithCounter(100, nil)
	if b.Counter() == nil {
		t.Fatal("expected default counter")
	}
	if b.Counter().URLWeight != DefaultURLWeight {
		t.Errorf("URLWeight = %d, expected %d", b.Counter().URLWeight, DefaultURLWeight)
	}
}

func TestBudget_DisplayLimit(t *testing.T) {
	tests := []struct {
		max      int
		expected int
	}{
		{280, 140},
		{281, 140},
		{10, 5},
	}

	for _, tt := range tests {
		if got := NewBudget(tt.max).DisplayLimit(); got != tt.expected {
			t.Errorf("NewBudget(%d).DisplayLimit() = %d, expected %d", tt.max, got, tt.expected)
		}
	}
}

func TestBudget_Fits(t *testing.T) {
	b := NewBudget(280)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "empty fits",
			text:     "",
			expected: true,
		},
		{
			name:     "280 ascii fits",
			text:     strings.Repeat("a", 280),
			expected: true,
		},
		{
			name:     "281 ascii does not fit",
			text:     strings.Repeat("a", 281),
			expected: false,
		},
		{
			name:     "140 cjk fits",
			text:     strings.Repeat("字", 140),
			expected: true,
		},
		{
			name:     "141 cjk does not fit",
			text:     strings.Repeat("字", 141),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Fits(tt.text); got != tt.expected {
				t.Errorf("Fits() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

// The overflow decision uses the full weight: a weight of 281 overflows even
// though its display count (141) is only one past the display limit (140),
// and a weight of 279 does not overflow even though it displays as 140.
func TestBudget_FullWeightDecidesOverflow(t *testing.T) {
	b := NewBudget(280)

	if b.FitsWeight(281) {
		t.Error("FitsWeight(281) = true, expected false")
	}
	if !b.FitsWeight(279) {
		t.Error("FitsWeight(279) = false, expected true")
	}
	if DisplayCount(279) != b.DisplayLimit() {
		t.Errorf("DisplayCount(279) = %d, expected %d", DisplayCount(279), b.DisplayLimit())
	}
}

func TestBudget_Remaining(t *testing.T) {
	b := NewBudget(280)

	tests := []struct {
		name     string
		used     int
		expected int
	}{
		{name: "none used", used: 0, expected: 280},
		{name: "some used", used: 100, expected: 180},
		{name: "all used", used: 280, expected: 0},
		{name: "over budget returns zero", used: 300, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Remaining(tt.used); got != tt.expected {
				t.Errorf("Remaining(%d) = %d, expected %d", tt.used, got, tt.expected)
			}
		})
	}
}

func TestBudget_Over(t *testing.T) {
	b := NewBudget(280)

	tests := []struct {
		used     int
		expected int
	}{
		{0, 0},
		{280, 0},
		{300, 20},
	}

	for _, tt := range tests {
		if got := b.Over(tt.used); got != tt.expected {
			t.Errorf("Over(%d) = %d, expected %d", tt.used, got, tt.expected)
		}
	}
}

func BenchmarkBudget_Fits(b *testing.B) {
	budget := NewBudget(280)
	text := strings.Repeat("context 文脈 ", 20)
	b.ResetTimer()
	for range b.N {
		budget.Fits(text)
	}
}
