package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("color", c.Color, validColorMode),
		criterio.Run("todo_file", c.TodoFile, isFileOrNotExist),
		c.validateIgnore(),
	)
}

func validColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid mode %q: must be one of auto, always, never", mode)
	}
}

// isFileOrNotExist validates that a path is not an existing directory.
// A missing file is fine; writes are best-effort.
func isFileOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// validateIgnore checks that every ignore pattern is a valid glob.
func (c *Config) validateIgnore() error {
	var errs criterio.FieldErrorsBuilder

	for i, pattern := range c.Ignore.Tools {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("ignore.tools[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	for i, pattern := range c.Ignore.Paths {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("ignore.paths[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}

	return errs.ToError()
}
