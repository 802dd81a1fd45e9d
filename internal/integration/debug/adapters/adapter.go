// Package adapters turns resolved attach configurations into the requests
// and commands a debug adapter expects.
package adapters

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"

	"github.com/dshills/attachcfg/internal/integration/debug/attach"
)

// AdapterType identifies a debug adapter.
type AdapterType string

const (
	// AdapterPython is the Python debugger (debugpy).
	AdapterPython AdapterType = "python"
	// AdapterDebugpy is the type name newer launch files use for debugpy.
	AdapterDebugpy AdapterType = "debugpy"
)

// ErrUnknownAdapter is returned by Registry.Create for an unregistered type.
var ErrUnknownAdapter = errors.New("unknown adapter type")

// Config is the base configuration for a debug adapter.
type Config struct {
	// Type is the adapter type.
	Type AdapterType `json:"type"`

	// Name is a human-readable name for this configuration.
	Name string `json:"name"`

	// Cwd is the working directory for the adapter process.
	Cwd string `json:"cwd,omitempty"`

	// Env are additional environment variables for the adapter process.
	Env map[string]string `json:"env,omitempty"`

	// AdapterPath is the path to the debug adapter executable.
	AdapterPath string `json:"adapterPath,omitempty"`

	// AdapterArgs are arguments for the adapter executable.
	AdapterArgs []string `json:"adapterArgs,omitempty"`

	// LogToFile asks the debuggee side to write its own log files.
	LogToFile bool `json:"logToFile,omitempty"`

	// Attach is the resolved attach request.
	Attach *attach.ResolvedConfig `json:"attach,omitempty"`
}

// Adapter provides attach capabilities for a debug adapter.
type Adapter interface {
	// Type returns the adapter type.
	Type() AdapterType

	// Name returns a human-readable adapter name.
	Name() string

	// Validate validates the configuration.
	Validate() error

	// GetCommand returns the command to start the adapter.
	GetCommand() (*exec.Cmd, error)

	// GetAttachArgs returns the arguments for the attach request.
	GetAttachArgs() (map[string]any, error)

	// GetConnectionType returns whether to use "stdio" or "socket".
	GetConnectionType() string

	// GetAddress returns the socket address (for socket connection).
	GetAddress() string
}

// Registry manages available debug adapters.
type Registry struct {
	adapters map[AdapterType]func(Config) (Adapter, error)
}

// NewRegistry creates a new adapter registry with default adapters.
func NewRegistry() *Registry {
	r := &Registry{
		adapters: make(map[AdapterType]func(Config) (Adapter, error)),
	}

	// Register built-in adapters
	r.Register(AdapterPython, NewPythonAdapter)
	r.Register(AdapterDebugpy, NewPythonAdapter)

	return r
}

// Register registers an adapter factory.
func (r *Registry) Register(adapterType AdapterType, factory func(Config) (Adapter, error)) {
	r.adapters[adapterType] = factory
}

// Create creates an adapter from configuration.
func (r *Registry) Create(config Config) (Adapter, error) {
	factory, ok := r.adapters[config.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownAdapter, config.Type, r.AvailableAdapters())
	}
	return factory(config)
}

// AvailableAdapters returns the registered adapter types in sorted order.
func (r *Registry) AvailableAdapters() []AdapterType {
	result := make([]AdapterType, 0, len(r.adapters))
	for t := range r.adapters {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// FindExecutable searches for an executable in PATH.
func FindExecutable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}
