package config

import (
	"fmt"
	"slices"
	"strings"
)

// Output formats accepted by output.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log formats accepted by logging.format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Section accessors return snapshots; changing one does not change the
// Config. Closed-set string values are trimmed and lower-cased.

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level  string
	Format string
	// Source adds the file and line of the logging call to each record.
	Source bool
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string
	Indent int
	Color  bool
}

// PlatformConfig overrides the detected client OS.
type PlatformConfig struct {
	// OS is empty to use the host OS.
	OS string
}

// AdapterConfig configures the debugpy adapter.
type AdapterConfig struct {
	PythonPath string
	// LogToFile asks debugpy to write its own log files.
	LogToFile bool
}

// Logging returns the logging section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level:  c.stringOr("logging.level", "warn"),
		Format: normalize(c.stringOr("logging.format", LogFormatText)),
		Source: c.boolOr("logging.source", false),
	}
}

// Output returns the output section.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Format: normalize(c.stringOr("output.format", FormatJSON)),
		Indent: c.intOr("output.indent", 2),
		Color:  c.boolOr("output.color", true),
	}
}

// Platform returns the platform section.
func (c *Config) Platform() PlatformConfig {
	return PlatformConfig{OS: c.stringOr("platform.os", "")}
}

// Adapter returns the adapter section.
func (c *Config) Adapter() AdapterConfig {
	return AdapterConfig{
		PythonPath: c.stringOr("adapter.pythonPath", ""),
		LogToFile:  c.boolOr("adapter.logToFile", false),
	}
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	if f := c.Output().Format; !slices.Contains([]string{FormatJSON, FormatYAML}, f) {
		return fmt.Errorf("%w: output.format %q", ErrInvalidValue, f)
	}
	if f := c.Logging().Format; !slices.Contains([]string{LogFormatText, LogFormatJSON}, f) {
		return fmt.Errorf("%w: logging.format %q", ErrInvalidValue, f)
	}
	if n := c.Output().Indent; n < 0 {
		return fmt.Errorf("%w: output.indent %d", ErrInvalidValue, n)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *Config) stringOr(path, def string) string {
	if v, err := c.GetString(path); err == nil {
		return v
	}
	return def
}

func (c *Config) intOr(path string, def int) int {
	if v, err := c.GetInt(path); err == nil {
		return v
	}
	return def
}

func (c *Config) boolOr(path string, def bool) bool {
	if v, err := c.GetBool(path); err == nil {
		return v
	}
	return def
}
