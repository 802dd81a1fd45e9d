package config

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/dshills/attachcfg/internal/config/loader"
)

// EnvPrefix is the prefix shared by every environment variable read as a
// setting.
const EnvPrefix = "ATTACHCFG_"

// envBindings lists the environment variables read as settings.
var envBindings = []loader.Binding{
	{Var: EnvPrefix + "LOG_LEVEL", Path: "logging.level", Kind: loader.KindString},
	{Var: EnvPrefix + "LOG_FORMAT", Path: "logging.format", Kind: loader.KindString},
	{Var: EnvPrefix + "LOG_SOURCE", Path: "logging.source", Kind: loader.KindBool},
	{Var: EnvPrefix + "OS", Path: "platform.os", Kind: loader.KindString},
	{Var: EnvPrefix + "OUTPUT", Path: "output.format", Kind: loader.KindString},
	{Var: EnvPrefix + "OUTPUT_INDENT", Path: "output.indent", Kind: loader.KindInt},
	{Var: EnvPrefix + "OUTPUT_COLOR", Path: "output.color", Kind: loader.KindBool},
	{Var: EnvPrefix + "PYTHON", Path: "adapter.pythonPath", Kind: loader.KindString},
	{Var: EnvPrefix + "ADAPTER_LOG_TO_FILE", Path: "adapter.logToFile", Kind: loader.KindBool},
}

// sections are the top-level keys a settings file may contain.
var sections = []string{"adapter", "logging", "output", "platform"}

// Config holds the merged attachcfg settings. It is safe for concurrent
// reads once loaded.
type Config struct {
	mu     sync.RWMutex
	merged map[string]any

	settingsFile string
	lookupEnv    loader.LookupFunc
	overrides    []override
}

type override struct {
	path  string
	value any
}

// Option configures a Config.
type Option func(*Config)

// WithSettingsFile sets the settings file to load. A missing file is not
// an error.
func WithSettingsFile(path string) Option {
	return func(c *Config) {
		c.settingsFile = path
	}
}

// WithEnv sets how environment variables are looked up. nil skips the
// environment layer. The default is os.LookupEnv.
func WithEnv(lookup loader.LookupFunc) Option {
	return func(c *Config) {
		c.lookupEnv = lookup
	}
}

// WithOverride sets a value in the flag layer, which beats every other
// layer. Overrides apply in the order given.
func WithOverride(path string, value any) Option {
	return func(c *Config) {
		c.overrides = append(c.overrides, override{path: path, value: value})
	}
}

// New creates a Config holding the defaults. Call Load to read the other
// layers.
func New(opts ...Option) *Config {
	c := &Config{
		merged:    defaultConfig(),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load rebuilds the merged settings from every layer.
func (c *Config) Load(_ context.Context) error {
	merged := defaultConfig()

	if c.settingsFile != "" {
		file, err := loader.ReadFile(c.settingsFile)
		if err != nil {
			return err
		}
		if err := checkSections(c.settingsFile, file); err != nil {
			return err
		}
		merged = loader.Merge(merged, file)
	}

	if c.lookupEnv != nil {
		env, err := loader.FromEnv(c.lookupEnv, envBindings)
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.Merge(merged, env)
	}

	for _, o := range c.overrides {
		if err := loader.SetPath(merged, o.path, o.value); err != nil {
			return fmt.Errorf("override %s: %w", o.path, err)
		}
	}

	c.mu.Lock()
	c.merged = merged
	c.mu.Unlock()
	return nil
}

func checkSections(path string, file map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(file)) {
		if !slices.Contains(sections, key) {
			return fmt.Errorf("%w: %q in %s", ErrUnknownSection, key, path)
		}
	}
	return nil
}

// Get returns the value at a dotted path such as "output.format".
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Lookup(c.merged, path)
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns the integer at path. TOML integers and whole YAML floats
// are accepted.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// GetBool returns the boolean at path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Merged returns a deep copy of the merged settings.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Clone(c.merged)
}

// DefaultSettingsFile returns the per-user settings file. An existing YAML
// file is preferred over the TOML default.
func DefaultSettingsFile() string {
	dir := userConfigDir()
	for _, name := range []string{"settings.yaml", "settings.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, "settings.toml")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "attachcfg")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "attachcfg")
}

func defaultConfig() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level":  "warn",
			"format": LogFormatText,
			"source": false,
		},
		"platform": map[string]any{
			"os": "",
		},
		"output": map[string]any{
			"format": FormatJSON,
			"indent": 2,
			"color":  true,
		},
		"adapter": map[string]any{
			"pythonPath": "",
			"logToFile":  false,
		},
	}
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
