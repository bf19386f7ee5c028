package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"selectkit/internal/domain"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ErrNotFound is returned by Load when no default config file exists
var ErrNotFound = errors.New("no config file found")

// DefaultNames are the file names Load looks for, in order
var DefaultNames = []string{"selectkit.toml", "selectkit.yaml", "selectkit.yml"}

// Config describes a dropdown: its catalog, its initial value and how the
// terminal host should present it
type Config struct {
	Version     int            `toml:"version" yaml:"version"`
	Mode        string         `toml:"mode" yaml:"mode"`
	Searchable  bool           `toml:"searchable" yaml:"searchable"`
	Placeholder string         `toml:"placeholder" yaml:"placeholder"`
	Value       []any          `toml:"value,omitempty" yaml:"value,omitempty"`
	Options     []OptionConfig `toml:"options" yaml:"options"`
	UISettings  UISettings     `toml:"ui" yaml:"ui"`
}

// OptionConfig is one option as written in a config file
type OptionConfig struct {
	Label    string `toml:"label" yaml:"label"`
	Value    any    `toml:"value" yaml:"value"`
	Disabled bool   `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	Hint     string `toml:"hint,omitempty" yaml:"hint,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisible int  `toml:"max_visible" yaml:"max_visible"`
	Width      int  `toml:"width" yaml:"width"`
	ShowHelp   bool `toml:"show_help" yaml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load(dir string) (*Config, string, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// Load loads the first of DefaultNames found in dir and returns its path
func (cs *configService) Load(dir string) (*Config, string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := cs.LoadFromPath(path)
		return cfg, path, err
	}
	return nil, "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UISettings.MaxVisible <= 0 {
		cfg.UISettings.MaxVisible = DefaultConfig().UISettings.MaxVisible
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "toml":
		data, err = toml.Marshal(config)
	case "yaml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SelectionMode returns the parsed mode
func (c *Config) SelectionMode() (domain.Mode, error) {
	return domain.ParseMode(strings.ToLower(c.Mode))
}

// Catalog converts the configured options into option records. Keys must be
// strings or integers. An option without a value keeps the zero key so the
// catalog can drop it with a warning.
func (c *Config) Catalog() ([]domain.OptionRecord, error) {
	out := make([]domain.OptionRecord, 0, len(c.Options))
	for i, o := range c.Options {
		var key domain.Key
		if o.Value != nil {
			k, err := domain.KeyOf(o.Value)
			if err != nil {
				return nil, fmt.Errorf("option %d (%q): %w", i, o.Label, err)
			}
			key = k
		}
		rec := domain.OptionRecord{Label: o.Label, Value: key, Disabled: o.Disabled}
		if o.Hint != "" {
			rec.Decoration = o.Hint
		}
		out = append(out, rec)
	}
	return out, nil
}

// InitialValue converts the configured value into a selection, or nil when
// none is configured
func (c *Config) InitialValue() (*domain.Selection, error) {
	if len(c.Value) == 0 {
		return nil, nil
	}
	mode, err := c.SelectionMode()
	if err != nil {
		return nil, err
	}
	keys := make([]domain.Key, 0, len(c.Value))
	for _, v := range c.Value {
		key, err := domain.KeyOf(v)
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		keys = append(keys, key)
	}
	sel := domain.NewMultiple(keys...).As(mode)
	return &sel, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Mode:        domain.Single.String(),
		Placeholder: "Select…",
		UISettings: UISettings{
			MaxVisible: 8,
			Width:      40,
			ShowHelp:   true,
		},
	}
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// SampleConfig returns a small catalog used to seed a new config file
func SampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Searchable = true
	cfg.Placeholder = "Pick a fruit"
	cfg.Options = []OptionConfig{
		{Label: "Apple", Value: "apple"},
		{Label: "Banana", Value: "banana", Hint: "yellow"},
		{Label: "Cherry", Value: "cherry"},
		{Label: "Durian", Value: "durian", Disabled: true, Hint: "out of season"},
	}
	return cfg
}
