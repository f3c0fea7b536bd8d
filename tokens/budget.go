package tokens

// Budget tracks a field's weight limit.
//
// Overflow decisions compare the full weight against MaxWeight. The count
// shown to the user is halved on both sides: DisplayCount(weight) against
// DisplayLimit().
type Budget struct {
	// MaxWeight is the configured limit, e.g. 280.
	MaxWeight int

	counter *WeightedCounter
}

// NewBudget creates a budget with the default counter.
// A maxWeight <= 0 uses DefaultMaxWeight.
func NewBudget(maxWeight int) *Budget {
	return NewBudgetWithCounter(maxWeight, NewWeightedCounter())
}

// NewBudgetWithCounter creates a budget that weighs text with counter.
func NewBudgetWithCounter(maxWeight int, counter *WeightedCounter) *Budget {
	if maxWeight <= 0 {
		maxWeight = DefaultMaxWeight
	}
	if counter == nil {
		counter = NewWeightedCounter()
	}
	return &Budget{
		MaxWeight: maxWeight,
		counter:   counter,
	}
}

// Counter returns the counter used by the budget.
func (b *Budget) Counter() *WeightedCounter {
	return b.counter
}

// DisplayLimit returns the limit shown next to the display count.
func (b *Budget) DisplayLimit() int {
	return b.MaxWeight / 2
}

// Fits returns true if the text's weight is within the budget.
func (b *Budget) Fits(text string) bool {
	return b.counter.FitsInLimit(text, b.MaxWeight)
}

// FitsWeight returns true if weight is within the budget.
func (b *Budget) FitsWeight(weight int) bool {
	return weight <= b.MaxWeight
}

// Remaining returns the weight left after used, never below zero.
func (b *Budget) Remaining(used int) int {
	remaining := b.MaxWeight - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Over returns how far used exceeds the budget, never below zero.
func (b *Budget) Over(used int) int {
	over := used - b.MaxWeight
	if over < 0 {
		return 0
	}
	return over
}
