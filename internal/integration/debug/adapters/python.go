package adapters

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"

	"github.com/dshills/attachcfg/internal/integration/debug/attach"
)

// ErrNoAttachConfig is returned when a Python adapter is created without a
// resolved attach configuration.
var ErrNoAttachConfig = errors.New("python adapter requires a resolved attach configuration")

// PythonConfig extends Config with Python-specific options.
type PythonConfig struct {
	Config

	// PythonPath is the path to the Python interpreter.
	PythonPath string `json:"pythonPath,omitempty"`
}

// PythonAdapter implements the Adapter interface for Python debugging.
type PythonAdapter struct {
	config PythonConfig
}

// NewPythonAdapter creates a new Python adapter.
func NewPythonAdapter(baseConfig Config) (Adapter, error) {
	adapter, err := NewPythonAdapterWithConfig(PythonConfig{Config: baseConfig})
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

// NewPythonAdapterWithConfig creates a Python adapter with full configuration.
func NewPythonAdapterWithConfig(config PythonConfig) (*PythonAdapter, error) {
	if config.Attach == nil {
		return nil, ErrNoAttachConfig
	}
	resolved := *config.Attach
	config.Attach = &resolved
	if config.Type == "" {
		config.Type = AdapterPython
	}
	if config.Name == "" {
		config.Name = config.Attach.Name
	}
	return &PythonAdapter{config: config}, nil
}

// NewPythonAttachAdapter creates a Python adapter for a resolved attach request.
func NewPythonAttachAdapter(resolved *attach.ResolvedConfig) (*PythonAdapter, error) {
	return NewPythonAdapterWithConfig(PythonConfig{
		Config: Config{Type: AdapterPython, Attach: resolved},
	})
}

// Type returns the adapter type.
func (a *PythonAdapter) Type() AdapterType {
	return a.config.Type
}

// Name returns a human-readable adapter name.
func (a *PythonAdapter) Name() string {
	return "Python Debugger (debugpy)"
}

// Validate validates the configuration.
func (a *PythonAdapter) Validate() error {
	c := a.config.Attach
	if c.Request != attach.RequestAttach {
		return fmt.Errorf("invalid request type: %s", c.Request)
	}
	if c.Port == nil && c.ProcessID == nil {
		return fmt.Errorf("port or processId is required for attach request")
	}
	if c.Port != nil && (*c.Port <= 0 || *c.Port > 65535) {
		return fmt.Errorf("port %d out of range", *c.Port)
	}
	return nil
}

// GetCommand returns the command to start the adapter.
func (a *PythonAdapter) GetCommand() (*exec.Cmd, error) {
	python := a.config.PythonPath
	if python == "" {
		python = a.config.AdapterPath
	}
	if python == "" {
		var err error
		python, err = FindExecutable("python3")
		if err != nil {
			python, err = FindExecutable("python")
			if err != nil {
				return nil, fmt.Errorf("python interpreter not found in PATH (install Python 3 and debugpy: pip install debugpy)")
			}
		}
	}

	// Start debugpy as a DAP server
	args := []string{"-m", "debugpy.adapter"}
	if a.config.LogToFile {
		args = append(args, "--log-stderr")
	}
	args = append(args, a.config.AdapterArgs...)

	cmd := exec.Command(python, args...)

	if a.config.Cwd != "" {
		cmd.Dir = a.config.Cwd
	}

	// Inherit parent environment and add/override with config values
	cmd.Env = os.Environ()
	for k, v := range a.config.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	return cmd, nil
}

// GetAttachArgs returns the arguments for the attach request.
func (a *PythonAdapter) GetAttachArgs() (map[string]any, error) {
	c := a.config.Attach
	args := map[string]any{
		"type":         "python",
		"request":      "attach",
		"justMyCode":   c.JustMyCode,
		"debugOptions": optionStrings(c.DebugOptions),
	}

	if c.Name != "" {
		args["name"] = c.Name
	}

	if c.Port != nil {
		args["connect"] = map[string]any{
			"host": c.Host,
			"port": *c.Port,
		}
	}

	if c.ProcessID != nil {
		args["processId"] = *c.ProcessID
	}

	mappings := make([]map[string]string, len(c.PathMappings))
	for i, m := range c.PathMappings {
		mappings[i] = map[string]string{
			"localRoot":  m.LocalRoot,
			"remoteRoot": m.RemoteRoot,
		}
	}
	args["pathMappings"] = mappings

	if c.HasOption(attach.OptionRedirectOutput) {
		args["redirectOutput"] = true
	}

	if c.HasOption(attach.OptionShowReturnValue) {
		args["showReturnValue"] = true
	}

	if c.HasOption(attach.OptionSudo) {
		args["sudo"] = true
	}

	if boolOption(c.Django, c.HasOption(attach.OptionDjango)) {
		args["django"] = true
	}

	if boolOption(c.Jinja, c.HasOption(attach.OptionJinja)) {
		args["jinja"] = true
	}

	if c.Subprocess != nil {
		args["subProcess"] = *c.Subprocess
	}

	if a.config.LogToFile {
		args["logToFile"] = true
	}

	return args, nil
}

// GetConnectionType returns whether to use "stdio" or "socket".
func (a *PythonAdapter) GetConnectionType() string {
	if a.config.Attach.Port != nil {
		return "socket"
	}
	return "stdio"
}

// GetAddress returns the socket address (for socket connection).
func (a *PythonAdapter) GetAddress() string {
	c := a.config.Attach
	if c.Port == nil {
		return ""
	}
	host := c.Host
	if host == "" {
		host = attach.DefaultHost
	}
	return net.JoinHostPort(host, strconv.Itoa(*c.Port))
}

// optionStrings converts option tags to plain strings, never returning nil
// so the request always carries an array.
func optionStrings(opts []attach.DebugOption) []string {
	result := make([]string, len(opts))
	for i, o := range opts {
		result[i] = string(o)
	}
	return result
}

// boolOption prefers an explicit flag and falls back to the option tag.
func boolOption(flag *bool, tagged bool) bool {
	if flag != nil {
		return *flag
	}
	return tagged
}
