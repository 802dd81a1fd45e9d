package attach

import "slices"

// RequestAttach is the only request kind this package resolves.
const RequestAttach = "attach"

// DefaultHost is used when a request names no host.
const DefaultHost = "localhost"

// DebugOption is a debugpy option tag.
type DebugOption string

const (
	// OptionRedirectOutput sends debuggee output to the debug console.
	OptionRedirectOutput DebugOption = "RedirectOutput"
	// OptionShowReturnValue shows function return values while stepping.
	OptionShowReturnValue DebugOption = "ShowReturnValue"
	// OptionFixFilePathCase normalizes drive letter and path case on Windows.
	OptionFixFilePathCase DebugOption = "FixFilePathCase"
	// OptionWindowsClient marks the debugger client as running on Windows.
	OptionWindowsClient DebugOption = "WindowsClient"
	// OptionUnixClient marks the debugger client as running on a Unix-like OS.
	OptionUnixClient DebugOption = "UnixClient"

	// The following tags are never inspected here but are preserved when a
	// request supplies them.

	OptionJinja                 DebugOption = "Jinja"
	OptionDjango                DebugOption = "Django"
	OptionSudo                  DebugOption = "Sudo"
	OptionPyramid               DebugOption = "Pyramid"
	OptionDebugStdLib           DebugOption = "DebugStdLib"
	OptionStopOnEntry           DebugOption = "StopOnEntry"
	OptionBreakOnSystemExitZero DebugOption = "BreakOnSystemExitZero"
	OptionWaitOnAbnormalExit    DebugOption = "WaitOnAbnormalExit"
	OptionWaitOnNormalExit      DebugOption = "WaitOnNormalExit"
)

// KnownOptions returns every option tag debugpy understands.
func KnownOptions() []DebugOption {
	return []DebugOption{
		OptionRedirectOutput, OptionShowReturnValue, OptionFixFilePathCase,
		OptionWindowsClient, OptionUnixClient, OptionJinja, OptionDjango,
		OptionSudo, OptionPyramid, OptionDebugStdLib, OptionStopOnEntry,
		OptionBreakOnSystemExitZero, OptionWaitOnAbnormalExit, OptionWaitOnNormalExit,
	}
}

// PathMapping pairs a root on the debugger's machine with the matching root
// on the debuggee's machine.
type PathMapping struct {
	LocalRoot  string `json:"localRoot" yaml:"localRoot"`
	RemoteRoot string `json:"remoteRoot" yaml:"remoteRoot"`
}

// RequestConfig is a user-authored, partially specified attach request.
//
// Pointer and slice fields distinguish "absent" (nil) from an explicit zero
// value. A non-nil empty PathMappings is an explicit request for no mapping.
type RequestConfig struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Request string `json:"request,omitempty" yaml:"request,omitempty"`

	Host      *string `json:"host,omitempty" yaml:"host,omitempty"`
	Port      *int    `json:"port,omitempty" yaml:"port,omitempty"`
	ProcessID *int    `json:"processId,omitempty" yaml:"processId,omitempty"`

	LocalRoot    *string       `json:"localRoot,omitempty" yaml:"localRoot,omitempty"`
	RemoteRoot   *string       `json:"remoteRoot,omitempty" yaml:"remoteRoot,omitempty"`
	PathMappings []PathMapping `json:"pathMappings,omitempty" yaml:"pathMappings,omitempty"`

	DebugOptions []DebugOption `json:"debugOptions,omitempty" yaml:"debugOptions,omitempty"`
	JustMyCode   *bool         `json:"justMyCode,omitempty" yaml:"justMyCode,omitempty"`
	DebugStdLib  *bool         `json:"debugStdLib,omitempty" yaml:"debugStdLib,omitempty"`

	Django     *bool `json:"django,omitempty" yaml:"django,omitempty"`
	Jinja      *bool `json:"jinja,omitempty" yaml:"jinja,omitempty"`
	Subprocess *bool `json:"subProcess,omitempty" yaml:"subProcess,omitempty"`
}

// ResolvedConfig is a fully populated attach request.
//
// Request, Host, DebugOptions, PathMappings and JustMyCode are always set.
// Port stays nil when the request did not name one.
type ResolvedConfig struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Request string `json:"request" yaml:"request"`

	Host      string `json:"host" yaml:"host"`
	Port      *int   `json:"port,omitempty" yaml:"port,omitempty"`
	ProcessID *int   `json:"processId,omitempty" yaml:"processId,omitempty"`

	LocalRoot    *string       `json:"localRoot,omitempty" yaml:"localRoot,omitempty"`
	RemoteRoot   *string       `json:"remoteRoot,omitempty" yaml:"remoteRoot,omitempty"`
	PathMappings []PathMapping `json:"pathMappings" yaml:"pathMappings"`

	DebugOptions []DebugOption `json:"debugOptions" yaml:"debugOptions"`
	JustMyCode   bool          `json:"justMyCode" yaml:"justMyCode"`
	DebugStdLib  *bool         `json:"debugStdLib,omitempty" yaml:"debugStdLib,omitempty"`

	Django     *bool `json:"django,omitempty" yaml:"django,omitempty"`
	Jinja      *bool `json:"jinja,omitempty" yaml:"jinja,omitempty"`
	Subprocess *bool `json:"subProcess,omitempty" yaml:"subProcess,omitempty"`
}

// HasOption reports whether opt is present in the resolved option list.
func (c *ResolvedConfig) HasOption(opt DebugOption) bool {
	return slices.Contains(c.DebugOptions, opt)
}

// AsRequest converts a resolved configuration back into a request in which
// every defaulted field is explicitly present.
func (c *ResolvedConfig) AsRequest() RequestConfig {
	host := c.Host
	justMyCode := c.JustMyCode
	mappings := c.PathMappings
	if mappings == nil {
		mappings = []PathMapping{}
	}
	options := c.DebugOptions
	if options == nil {
		options = []DebugOption{}
	}
	return RequestConfig{
		Type:         c.Type,
		Name:         c.Name,
		Request:      c.Request,
		Host:         &host,
		Port:         c.Port,
		ProcessID:    c.ProcessID,
		LocalRoot:    c.LocalRoot,
		RemoteRoot:   c.RemoteRoot,
		PathMappings: slices.Clone(mappings),
		DebugOptions: slices.Clone(options),
		JustMyCode:   &justMyCode,
		DebugStdLib:  c.DebugStdLib,
		Django:       c.Django,
		Jinja:        c.Jinja,
		Subprocess:   c.Subprocess,
	}
}
