package template

import (
	"regexp"
	"strings"
)

// goTemplateKeywords are Go template reserved words that should not be
// converted to variable references.
var goTemplateKeywords = map[string]bool{
	"else":  true,
	"end":   true,
	"if":    true,
	"range": true,
	"with":  true,
}

var (
	ifPattern     = regexp.MustCompile(`\{\{#if\s+(\w+)\}\}`)
	unlessPattern = regexp.MustCompile(`\{\{#unless\s+(\w+)\}\}`)
	varPattern    = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
	callPattern   = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\s+([^{}]+)\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax.
//
// Conversions:
//   - {{variable}} -> {{.variable}}
//   - {{#if x}}...{{else}}...{{/if}} -> {{if .x}}...{{else}}...{{end}}
//   - {{#unless x}}...{{/unless}} -> {{if not .x}}...{{end}}
//   - {{helper arg1 arg2}} -> {{helper .arg1 .arg2}}
func convertSyntax(input string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = unlessPattern.ReplaceAllString(result, "{{if not .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")
	result = strings.ReplaceAll(result, "{{/unless}}", "{{end}}")

	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-2]
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	return callPattern.ReplaceAllStringFunc(result, func(match string) string {
		sub := callPattern.FindStringSubmatch(match)
		fn, args := sub[1], sub[2]
		if goTemplateKeywords[fn] || fn == "not" {
			return match
		}
		return "{{" + fn + " " + convertArguments(args) + "}}"
	})
}

// convertArguments prefixes bare identifiers with a dot. Numbers, quoted
// strings, booleans and expressions already starting with a dot are kept.
func convertArguments(args string) string {
	parts := splitArguments(args)
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, "."),
			isNumber(part),
			isQuotedString(part),
			part == "true", part == "false":
		case isValidIdentifier(part):
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits arguments on spaces outside quoted strings.
func splitArguments(args string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	for _, ch := range strings.TrimSpace(args) {
		switch {
		case quote == 0 && (ch == '"' || ch == '\''):
			quote = ch
			current.WriteRune(ch)
		case quote != 0 && ch == quote:
			quote = 0
			current.WriteRune(ch)
		case quote == 0 && ch == ' ':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func isNumber(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i, ch := range s {
		if ch == '-' && i == 0 {
			continue
		}
		if ch != '.' && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

func isQuotedString(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		isLetter := ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'
		if !isLetter && (!isDigit || i == 0) {
			return false
		}
	}
	return true
}

// extractVariables returns the deduplicated variable names a template uses.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if name == "" || seen[name] || goTemplateKeywords[name] {
			return
		}
		seen[name] = true
		result = append(result, name)
	}

	for _, m := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range ifPattern.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range unlessPattern.FindAllStringSubmatch(templateStr, -1) {
		add(m[1])
	}
	for _, m := range callPattern.FindAllStringSubmatch(templateStr, -1) {
		for _, arg := range splitArguments(m[2]) {
			if isValidIdentifier(arg) && arg != "true" && arg != "false" {
				add(arg)
			}
		}
	}
	return result
}
