package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/randalmurphal/charkit/tokens"
	"github.com/randalmurphal/charkit/truncate"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"weight":  tokens.EstimateWeight,
		"display": tokens.DisplayCount,
		"clip":    clip,
		"json":    toJSON,
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"default": defaultValue,
	}
}

// clip cuts s to fit within maxWeight and appends an ellipsis when cut.
func clip(s string, maxWeight int) string {
	return truncate.ToLength(s, maxWeight, "…")
}

// toJSON converts a value to a compact JSON string.
// If marshaling fails, returns the value's default string representation.
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// defaultValue returns the default if the value is nil or an empty string.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
