// Package template renders counter labels and validation messages.
//
// Templates use a small Handlebars-like syntax that is converted to Go
// template syntax before execution:
//
//	{{count}}/{{limit}} 文字
//	{{#if overflowing}}over by {{over}}{{/if}}
//	{{#unless overflowing}}ok{{/unless}}
//	{{clip text 20}}
//
// # Built-in Functions
//
//   - weight(s string) int - Weighted length of s with the default weights
//   - display(w int) int - Display count for a weight (half, rounded up)
//   - clip(s string, maxWeight int) string - Cut s to a weight with an ellipsis
//   - json(v any) string - Compact JSON
//   - upper, lower, trim - String case and whitespace helpers
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//
// Compiled templates are cached per engine, so rendering the same label on
// every keystroke parses it once.
//
//	engine := template.NewEngine()
//	label, err := engine.Render("{{count}}/{{limit}}", map[string]any{
//	    "count": 6, "limit": 140,
//	})
//	// label: "6/140"
package template
