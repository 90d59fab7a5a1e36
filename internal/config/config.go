// Package config loads tablefield settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tablefield/table"
)

// DefaultDocumentPath is where the table lives inside a document when no
// path is configured.
const DefaultDocumentPath = "table"

// Config represents the settings for one table field.
type Config struct {
	// Legend and description of the form.
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`

	// DocumentPath locates the table value inside the JSON document, in
	// gjson/sjson path syntax.
	DocumentPath string `yaml:"path,omitempty"`

	Options table.Options `yaml:"options,omitempty"`

	LiveEdit     bool `yaml:"live_edit,omitempty"`
	HistoryLimit int  `yaml:"history_limit,omitempty"`

	// LogFile receives logs from interactive sessions.
	LogFile string `yaml:"log_file,omitempty"`
}

// configPathFunc can be overridden for testing.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/tablefield/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tablefield", "config.yaml"), nil
}

func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path. A missing file yields an empty
// config.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config and validates its options.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Options.Validate(); err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid config file: history_limit must be >= 0")
	}
	return nil
}

// SaveToPath writes config to path, creating parent directories.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Path returns the effective document path.
func (c *Config) Path() string {
	if c.DocumentPath == "" {
		return DefaultDocumentPath
	}
	return c.DocumentPath
}
