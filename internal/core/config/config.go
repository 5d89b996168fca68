// Package config handles configuration loading and validation for scout.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	// TodoFile is the path the current in-progress task is written to.
	// The --todo-file flag (SCOUT_TODO_FILE) takes precedence over this.
	TodoFile string `yaml:"todo_file"`
	// Color controls tag styling on stderr: auto, always, never.
	Color string `yaml:"color"`
	// Ignore suppresses lines for matching tools or paths.
	Ignore IgnoreConfig `yaml:"ignore"`
}

// IgnoreConfig holds glob patterns for suppressing event lines.
type IgnoreConfig struct {
	// Tools are matched against the resolved tool name.
	Tools []string `yaml:"tools"`
	// Paths are matched against the primary file path of file-bearing
	// tool events.
	Paths []string `yaml:"paths"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Color: ColorAuto,
	}
}

// Load reads configuration from the given path. If configPath is empty
// or doesn't exist, defaults are returned.
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

	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	return &cfg, nil
}

// ResolveTodoFile returns the active-task file path, preferring the
// flag/env value over the config file value. Empty means no write.
func (c *Config) ResolveTodoFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.TodoFile
}
