// Package config loads charkit settings from YAML, TOML or JSON files.
//
// A config names a counting profile, optional weight overrides, the fields of
// a form and the messages shown to users:
//
//	profile: twitter
//	fields:
//	  - id: title
//	    max_weight: 60
//	  - id: body
//	messages:
//	  overflow: "Too long."
//
// Fields without max_weight use the profile's limit.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/charkit/editor"
	"github.com/randalmurphal/charkit/tokens"
)

// Sentinel errors for config loading.
var (
	// ErrUnsupportedFormat indicates a file extension with no known decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidConfig indicates a config that failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Format is a config file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Config is the file format.
type Config struct {
	// Profile names the counting profile (see tokens.Profiles).
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty" toml:"profile,omitempty" mapstructure:"profile" jsonschema:"enum=twitter,enum=default"`

	// URLWeight overrides the profile's flat URL weight when positive.
	URLWeight int `json:"url_weight,omitempty" yaml:"url_weight,omitempty" toml:"url_weight,omitempty" mapstructure:"url_weight" jsonschema:"minimum=0"`

	// CJKWeight overrides the profile's per-unit CJK weight when positive.
	CJKWeight int `json:"cjk_weight,omitempty" yaml:"cjk_weight,omitempty" toml:"cjk_weight,omitempty" mapstructure:"cjk_weight" jsonschema:"minimum=0"`

	Fields   []Field  `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty" mapstructure:"fields"`
	Messages Messages `json:"messages,omitempty" yaml:"messages,omitempty" toml:"messages,omitempty" mapstructure:"messages"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" toml:"log_level,omitempty" mapstructure:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// Field configures one form field.
type Field struct {
	ID   string `json:"id" yaml:"id" toml:"id" mapstructure:"id" jsonschema:"required,minLength=1"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`

	// MaxWeight is the weight limit. 0 uses the profile's limit.
	MaxWeight int `json:"max_weight,omitempty" yaml:"max_weight,omitempty" toml:"max_weight,omitempty" mapstructure:"max_weight" jsonschema:"minimum=0"`

	// Unlimited disables the limit for the field.
	Unlimited bool `json:"unlimited,omitempty" yaml:"unlimited,omitempty" toml:"unlimited,omitempty" mapstructure:"unlimited"`
}

// Messages holds user-facing templates.
type Messages struct {
	Overflow     string `json:"overflow,omitempty" yaml:"overflow,omitempty" toml:"overflow,omitempty" mapstructure:"overflow"`
	CounterLabel string `json:"counter_label,omitempty" yaml:"counter_label,omitempty" toml:"counter_label,omitempty" mapstructure:"counter_label"`
}

// Default returns a config with defaults applied and no fields.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads, decodes, defaults and validates the config at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format, applies defaults and validates.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Profile == "" {
		c.Profile = "default"
	}
	if c.Messages.Overflow == "" {
		c.Messages.Overflow = editor.DefaultOverflowMessage
	}
	if c.Messages.CounterLabel == "" {
		c.Messages.CounterLabel = editor.DefaultCounterLabel
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the config.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := tokens.Profiles[c.Profile]; !ok {
		errs = append(errs, fmt.Errorf("unknown profile %q", c.Profile))
	}
	if c.URLWeight < 0 {
		errs = append(errs, fmt.Errorf("url_weight must be >= 0, got %d", c.URLWeight))
	}
	if c.CJKWeight < 0 {
		errs = append(errs, fmt.Errorf("cjk_weight must be >= 0, got %d", c.CJKWeight))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		switch {
		case f.ID == "":
			errs = append(errs, fmt.Errorf("fields[%d]: id is required", i))
		case seen[f.ID]:
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate id %q", i, f.ID))
		}
		seen[f.ID] = true
		if f.MaxWeight < 0 {
			errs = append(errs, fmt.Errorf("fields[%d]: max_weight must be >= 0, got %d", i, f.MaxWeight))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ProfileSettings returns the configured profile with weight overrides applied.
func (c *Config) ProfileSettings() tokens.Profile {
	p := tokens.GetProfile(c.Profile)
	if c.URLWeight > 0 {
		p.URLWeight = c.URLWeight
	}
	if c.CJKWeight > 0 {
		p.CJKWeight = c.CJKWeight
	}
	return p
}

// Counter returns the weighted counter described by the config.
func (c *Config) Counter() *tokens.WeightedCounter {
	return c.ProfileSettings().Counter()
}

// Descriptors returns the editor field descriptors.
func (c *Config) Descriptors() []editor.FieldDescriptor {
	maxWeight := c.ProfileSettings().MaxWeight
	out := make([]editor.FieldDescriptor, 0, len(c.Fields))
	for _, f := range c.Fields {
		d := editor.FieldDescriptor{ID: f.ID, Name: f.Name, MaxWeight: f.MaxWeight}
		switch {
		case f.Unlimited:
			d.MaxWeight = 0
		case d.MaxWeight == 0:
			d.MaxWeight = maxWeight
		}
		out = append(out, d)
	}
	return out
}

// ControllerOptions returns the editor options the config implies.
func (c *Config) ControllerOptions(logger *slog.Logger) []editor.Option {
	return []editor.Option{
		editor.WithCounter(c.Counter()),
		editor.WithCounterLabel(c.Messages.CounterLabel),
		editor.WithOverflowMessage(c.Messages.Overflow),
		editor.WithLogger(logger),
	}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
