// Package attach resolves partially specified Python attach requests into
// complete debug adapter configurations.
//
// A request authored by a user (or lifted from a launch file) usually names
// only a port. The Resolver fills in everything else from ambient context:
// the host operating system, the active editor document, and the workspace
// folders. Explicitly supplied values are never overwritten.
//
// Resolution is a fixed sequence of default rules:
//
//	request       "attach"
//	host          "localhost"
//	debugOptions  RedirectOutput, <OS client tags>, ShowReturnValue
//	pathMappings  explicit roots, identity mapping for loopback hosts, or none
//	justMyCode    justMyCode if set, otherwise !debugStdLib
//
// Each rule runs only when its field is absent from the request. The
// justMyCode rule is derived from two fields, with justMyCode dominant.
//
// Loopback detection matches the literal hosts "localhost", "127.0.0.1"
// and "::1" only. Addresses such as "0.0.0.0" or DNS aliases for the local
// machine are treated as remote.
//
// ResolveDocument applies the same rules to a raw JSON document, writing
// only the defaulted keys so that every other key survives byte for byte.
package attach
