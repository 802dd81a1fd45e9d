package attach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dshills/attachcfg/internal/editor"
	"github.com/dshills/attachcfg/internal/logging"
	"github.com/dshills/attachcfg/internal/project/workspace"
)

// ErrNothingToDebug is returned when the request cannot describe an attach
// session at all, such as a "launch" request handed to this resolver.
// Callers should treat it as "nothing to debug" rather than retry.
var ErrNothingToDebug = errors.New("nothing to debug")

// Platform reports the OS family of the debugger client.
type Platform interface {
	IsWindows() bool
	IsMac() bool
	IsLinux() bool
}

// FolderProvider lists the workspace folders in their configured order.
type FolderProvider interface {
	Folders() []workspace.Folder
}

// loopbackHosts are the literal hosts treated as the local machine.
var loopbackHosts = []string{"localhost", "127.0.0.1", "::1"}

// IsLoopbackHost reports whether host names the local machine.
func IsLoopbackHost(host string) bool {
	return slices.Contains(loopbackHosts, host)
}

// DefaultDebugOptions returns the option tags applied when a request names
// none. The order is significant.
func DefaultDebugOptions(p Platform) []DebugOption {
	opts := []DebugOption{OptionRedirectOutput}
	if p.IsWindows() {
		opts = append(opts, OptionFixFilePathCase, OptionWindowsClient)
	} else {
		opts = append(opts, OptionUnixClient)
	}
	return append(opts, OptionShowReturnValue)
}

// DeriveJustMyCode reconciles justMyCode and debugStdLib. An explicit
// justMyCode wins; otherwise it is the negation of debugStdLib, which
// defaults to false.
func DeriveJustMyCode(justMyCode, debugStdLib *bool) bool {
	return definedOrDefault(justMyCode, !definedOrDefault(debugStdLib, false))
}

func definedOrDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// Resolver fills in attach requests from ambient editor context.
// A Resolver is safe for concurrent use.
type Resolver struct {
	platform Platform
	editor   editor.ActiveEditor
	folders  FolderProvider
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report resolution decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver that consults the given collaborators.
// A nil editor means no document is ever active; a nil folder provider
// means the workspace has no folders.
func NewResolver(p Platform, ed editor.ActiveEditor, folders FolderProvider, opts ...Option) *Resolver {
	if ed == nil {
		ed = editor.NoActiveEditor()
	}
	if folders == nil {
		folders = workspace.New()
	}
	r := &Resolver{
		platform: p,
		editor:   ed,
		folders:  folders,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces a fully populated attach configuration from input.
//
// When folder is nil the workspace folder is inferred from the active
// document. The input is not modified and the result shares no memory
// with it.
func (r *Resolver) Resolve(ctx context.Context, folder *workspace.Folder, input RequestConfig) (*ResolvedConfig, error) {
	out, _, err := r.resolve(ctx, folder, input)
	return out, err
}

// resolve runs the rules and also reports which fields were defaulted.
func (r *Resolver) resolve(ctx context.Context, folder *workspace.Folder, input RequestConfig) (*ResolvedConfig, []string, error) {
	if input.Request != "" && input.Request != RequestAttach {
		return nil, nil, fmt.Errorf("%w: request %q is not an attach request", ErrNothingToDebug, input.Request)
	}
	if folder == nil {
		folder = r.inferFolder(ctx)
	}

	env := &ruleEnv{platform: r.platform, folder: folder, in: &input}
	out := copyRequest(input)

	var applied []string
	for _, rule := range rules {
		if !rule.needsDefault(&input) {
			continue
		}
		rule.apply(env, out)
		applied = append(applied, rule.field)
	}

	folderPath := ""
	if folder != nil {
		folderPath = folder.Path
	}
	r.logger.DebugContext(ctx, "resolved attach configuration",
		"folder", folderPath,
		"host", out.Host,
		"defaulted", applied,
		"pathMappings", len(out.PathMappings),
		"justMyCode", out.JustMyCode,
	)

	return out, applied, nil
}

// inferFolder picks a workspace folder for the active document: the most
// specific containing folder, else the first folder, else the directory of
// an active Python document. It returns nil when none applies. Paths are
// compared under the client platform's rules.
func (r *Resolver) inferFolder(ctx context.Context) *workspace.Folder {
	folders := r.folders.Folders()
	doc, hasDoc := r.editor.ActiveDocument(ctx)

	if hasDoc {
		m := workspace.Matcher{Windows: r.platform.IsWindows()}
		if f, ok := m.Match(folders, doc.Path); ok {
			return &f
		}
	}
	if len(folders) > 0 {
		f := folders[0]
		return &f
	}
	if hasDoc && doc.IsPython() {
		dir := doc.Dir()
		return &workspace.Folder{Path: dir, URI: workspace.PathToURI(dir), Name: dir}
	}
	return nil
}

// copyRequest copies every field of in, cloning slices so the output
// never aliases the input.
func copyRequest(in RequestConfig) *ResolvedConfig {
	out := &ResolvedConfig{
		Type:         in.Type,
		Name:         in.Name,
		Request:      in.Request,
		Port:         cloneValue(in.Port),
		ProcessID:    cloneValue(in.ProcessID),
		LocalRoot:    cloneValue(in.LocalRoot),
		RemoteRoot:   cloneValue(in.RemoteRoot),
		PathMappings: slices.Clone(in.PathMappings),
		DebugOptions: slices.Clone(in.DebugOptions),
		DebugStdLib:  cloneValue(in.DebugStdLib),
		Django:       cloneValue(in.Django),
		Jinja:        cloneValue(in.Jinja),
		Subprocess:   cloneValue(in.Subprocess),
	}
	if in.Host != nil {
		out.Host = *in.Host
	}
	if in.JustMyCode != nil {
		out.JustMyCode = *in.JustMyCode
	}
	return out
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
