// Package tokens provides weighted length counting for character-limited text.
//
// Text is weighed token by token after segment.Segment splits it: plain text
// and whitespace count 1 per UTF-16 unit, CJK text counts 2 per unit, and
// every URL counts a flat 23 however long it is.
//
// # Counter
//
// The Counter interface provides weighing methods:
//
//	counter := tokens.NewWeightedCounter()
//	w := counter.Count("hello 世界")           // 6 + 4 = 10
//	fits := counter.FitsInLimit(text, 280)   // true if weight <= 280
//
// For one-off counting, use the convenience function:
//
//	w := tokens.EstimateWeight("https://example.com")  // 23
//
// # Display count
//
// Users see half the weight, rounded up, against half the limit:
//
//	budget := tokens.NewBudget(280)
//	fmt.Printf("%d/%d", tokens.DisplayCount(w), budget.DisplayLimit())
//
// Overflow is always decided on the full weight against the full limit,
// never on the halved values.
//
// # Profiles
//
// Get the counting rules of a platform:
//
//	p := tokens.GetProfile("twitter")   // 280, URL 23, CJK 2
//	p := tokens.GetProfile("unknown")   // default profile
package tokens
