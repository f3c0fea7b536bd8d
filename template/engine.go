package template

import (
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Engine renders counter labels and validation messages.
// Compiled templates are cached by source string.
type Engine struct {
	mu    sync.Mutex
	funcs template.FuncMap
	cache map[string]*template.Template
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
		cache: make(map[string]*template.Template),
	}
}

// Render executes the template with the given variables.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	tmpl, err := e.compile(templateStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}
	return buf.String(), nil
}

// MustRender is like Render but returns templateStr unchanged on error.
func (e *Engine) MustRender(templateStr string, variables map[string]any) string {
	out, err := e.Render(templateStr, variables)
	if err != nil {
		return templateStr
	}
	return out
}

// Parse validates the template and extracts variable names.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.compile(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr), nil
}

// AddFunc adds a custom template function and drops cached templates.
func (e *Engine) AddFunc(name string, fn any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.funcs[name] = fn
	e.cache = make(map[string]*template.Template)
}

func (e *Engine) compile(templateStr string) (*template.Template, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}
	tmpl, err := template.New("message").Funcs(e.funcs).Parse(convertSyntax(templateStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	e.cache[templateStr] = tmpl
	return tmpl, nil
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
