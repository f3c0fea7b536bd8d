// Package charkit counts and limits text the way character-limited platforms
// do.
//
// charkit is a set of small packages that can be imported on their own:
//
//   - segment: split text into plain, whitespace, CJK and URL tokens
//   - tokens: weigh tokens (URL flat 23, CJK 2 per unit) and manage budgets
//   - truncate: split text into the part within a limit and the overflow
//   - cursor: keep a caret in place across an overflow split
//   - editor: drive the fields of a form, recounting on every edit and
//     gating submission
//   - htmlform: run the editor against rendered HTML markup
//   - template: render counter labels and messages with {{variable}} syntax
//   - config: load settings from YAML, TOML or JSON, with hot reload
//
// # Quick Start
//
// Counting:
//
//	import "github.com/randalmurphal/charkit/tokens"
//	counter := tokens.NewWeightedCounter()
//	weight := counter.Count("日本語 https://example.com") // 30
//	shown := tokens.DisplayCount(weight)                 // 15
//
// Splitting at a limit:
//
//	import "github.com/randalmurphal/charkit/truncate"
//	r := truncate.Split("hello world!!", 10)
//	// r.Kept == "hello worl", r.Exceeded == "d!!"
//
// Driving a form:
//
//	import "github.com/randalmurphal/charkit/editor"
//	page := editor.NewMemoryPage()
//	page.AddField("body", "hello")
//	ctrl, _ := editor.New(page, []editor.FieldDescriptor{{ID: "body", MaxWeight: 280}})
//	_ = ctrl.HandleInput("body", false)
//	outcome, err := ctrl.Submit()
//
// The charkit command (cmd/charkit) exposes counting, splitting, form checks
// and file watching on the command line.
package charkit
