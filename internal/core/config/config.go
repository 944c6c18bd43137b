// Package config handles configuration loading and validation for eisenhower.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/eisenhower/internal/core/styles"
	"github.com/colonyops/eisenhower/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	TUI TUIConfig `yaml:"tui"`
	// Quadrants overrides quadrant labels, keyed by quadrant id.
	Quadrants map[string]string `yaml:"quadrants"`
}

// TUIConfig holds terminal UI preferences.
type TUIConfig struct {
	Theme            string `yaml:"theme"`
	ShowDescriptions *bool  `yaml:"show_descriptions"` // nil = default (true)
	ConfirmDelete    bool   `yaml:"confirm_delete"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Quadrants: map[string]string{},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.TUI.Theme == "" {
		c.TUI.Theme = styles.DefaultTheme
	}
	if c.Quadrants == nil {
		c.Quadrants = map[string]string{}
	}
}

// DescriptionsVisible reports whether task rows render their description line.
func (c *Config) DescriptionsVisible() bool {
	return c.TUI.ShowDescriptions == nil || *c.TUI.ShowDescriptions
}

// QuadrantLabel returns the configured label for q, falling back to the
// built-in label.
func (c *Config) QuadrantLabel(q task.Quadrant) string {
	if label, ok := c.Quadrants[string(q)]; ok && label != "" {
		return label
	}
	return q.Label()
}

// QuadrantInfos returns the quadrants in grid order with configured labels.
func (c *Config) QuadrantInfos() []task.QuadrantInfo {
	infos := task.Quadrants()
	for i := range infos {
		infos[i].Label = c.QuadrantLabel(infos[i].Quadrant)
	}
	return infos
}
