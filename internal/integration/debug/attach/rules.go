package attach

import "github.com/dshills/attachcfg/internal/project/workspace"

// ruleEnv is the ambient context a default may consult.
type ruleEnv struct {
	platform Platform
	folder   *workspace.Folder
	in       *RequestConfig
}

// rule fills one field of the output when the request leaves it absent.
type rule struct {
	// field is the JSON key the rule populates.
	field        string
	needsDefault func(in *RequestConfig) bool
	apply        func(env *ruleEnv, out *ResolvedConfig)
}

// rules run in order; pathMappings depends on the resolved host.
var rules = []rule{
	{
		field:        "request",
		needsDefault: func(in *RequestConfig) bool { return in.Request == "" },
		apply: func(_ *ruleEnv, out *ResolvedConfig) {
			out.Request = RequestAttach
		},
	},
	{
		field:        "host",
		needsDefault: func(in *RequestConfig) bool { return in.Host == nil },
		apply: func(_ *ruleEnv, out *ResolvedConfig) {
			out.Host = DefaultHost
		},
	},
	{
		field:        "debugOptions",
		needsDefault: func(in *RequestConfig) bool { return in.DebugOptions == nil },
		apply: func(env *ruleEnv, out *ResolvedConfig) {
			out.DebugOptions = DefaultDebugOptions(env.platform)
		},
	},
	{
		field:        "pathMappings",
		needsDefault: func(in *RequestConfig) bool { return in.PathMappings == nil },
		apply: func(env *ruleEnv, out *ResolvedConfig) {
			out.PathMappings = inferPathMappings(env, out.Host)
		},
	},
	{
		field:        "justMyCode",
		needsDefault: func(in *RequestConfig) bool { return in.JustMyCode == nil },
		apply: func(env *ruleEnv, out *ResolvedConfig) {
			out.JustMyCode = DeriveJustMyCode(env.in.JustMyCode, env.in.DebugStdLib)
		},
	},
}

// inferPathMappings derives mappings for a request that supplied none.
// Explicit roots are used verbatim. A loopback host shares the local
// file system, so the workspace folder maps onto itself. Anything else is
// unknown and yields no mapping.
func inferPathMappings(env *ruleEnv, host string) []PathMapping {
	in := env.in
	switch {
	case in.LocalRoot != nil && in.RemoteRoot != nil:
		return []PathMapping{{LocalRoot: *in.LocalRoot, RemoteRoot: *in.RemoteRoot}}
	case IsLoopbackHost(host) && env.folder != nil:
		return []PathMapping{{LocalRoot: env.folder.Path, RemoteRoot: env.folder.Path}}
	default:
		return []PathMapping{}
	}
}
