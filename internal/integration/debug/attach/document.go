package attach

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/attachcfg/internal/project/workspace"
)

// ErrInvalidDocument is returned when a raw configuration is not a JSON
// object, or when a key the resolver reads has the wrong JSON type.
var ErrInvalidDocument = errors.New("invalid attach configuration")

// ParseRequest reads the typed view of a raw JSON attach configuration.
//
// Keys that drive resolution (request, host, localRoot, remoteRoot,
// pathMappings, debugOptions, justMyCode, debugStdLib) must have their
// documented JSON type. Every other key is only copied, so a value of an
// unexpected type, such as "${command:pickProcess}" for processId, is left
// out of the typed view instead of failing. A null value counts as absent.
func ParseRequest(raw []byte) (RequestConfig, error) {
	if !gjson.ValidBytes(raw) {
		return RequestConfig{}, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return RequestConfig{}, ErrInvalidDocument
	}

	var (
		in  RequestConfig
		err error
	)
	if in.Request, err = stringField(doc, "request"); err != nil {
		return RequestConfig{}, err
	}
	if in.Host, err = optionalString(doc, "host"); err != nil {
		return RequestConfig{}, err
	}
	if in.LocalRoot, err = optionalString(doc, "localRoot"); err != nil {
		return RequestConfig{}, err
	}
	if in.RemoteRoot, err = optionalString(doc, "remoteRoot"); err != nil {
		return RequestConfig{}, err
	}
	if in.PathMappings, err = pathMappingsField(doc); err != nil {
		return RequestConfig{}, err
	}
	if in.DebugOptions, err = debugOptionsField(doc); err != nil {
		return RequestConfig{}, err
	}
	if in.JustMyCode, err = optionalBool(doc, "justMyCode"); err != nil {
		return RequestConfig{}, err
	}
	if in.DebugStdLib, err = optionalBool(doc, "debugStdLib"); err != nil {
		return RequestConfig{}, err
	}

	in.Type = lenientString(doc, "type")
	in.Name = lenientString(doc, "name")
	in.Port = lenientInt(doc, "port")
	in.ProcessID = lenientInt(doc, "processId")
	in.Django = lenientBool(doc, "django")
	in.Jinja = lenientBool(doc, "jinja")
	in.Subprocess = lenientBool(doc, "subProcess")
	return in, nil
}

// ResolveDocument resolves a raw JSON attach configuration.
//
// Every key the resolver defaulted is written; every other key, known or
// not, keeps its original text.
func (r *Resolver) ResolveDocument(ctx context.Context, folder *workspace.Folder, raw []byte) ([]byte, error) {
	input, err := ParseRequest(raw)
	if err != nil {
		return nil, err
	}

	resolved, applied, err := r.resolve(ctx, folder, input)
	if err != nil {
		return nil, err
	}

	doc := raw
	for _, field := range applied {
		value, err := resolvedValue(resolved, field)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetBytes(doc, field, value)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", field, err)
		}
	}
	return doc, nil
}

func resolvedValue(c *ResolvedConfig, field string) (any, error) {
	switch field {
	case "request":
		return c.Request, nil
	case "host":
		return c.Host, nil
	case "debugOptions":
		return c.DebugOptions, nil
	case "pathMappings":
		return c.PathMappings, nil
	case "justMyCode":
		return c.JustMyCode, nil
	default:
		return nil, fmt.Errorf("no document key for defaulted field %q", field)
	}
}

func present(doc gjson.Result, key string) (gjson.Result, bool) {
	v := doc.Get(key)
	return v, v.Exists() && v.Type != gjson.Null
}

func typeError(key, want string, got gjson.Result) error {
	return fmt.Errorf("%w: %s must be %s, got %s", ErrInvalidDocument, key, want, got.Type)
}

func stringField(doc gjson.Result, key string) (string, error) {
	v, ok := present(doc, key)
	if !ok {
		return "", nil
	}
	if v.Type != gjson.String {
		return "", typeError(key, "a string", v)
	}
	return v.Str, nil
}

func optionalString(doc gjson.Result, key string) (*string, error) {
	v, ok := present(doc, key)
	if !ok {
		return nil, nil
	}
	if v.Type != gjson.String {
		return nil, typeError(key, "a string", v)
	}
	s := v.Str
	return &s, nil
}

func optionalBool(doc gjson.Result, key string) (*bool, error) {
	v, ok := present(doc, key)
	if !ok {
		return nil, nil
	}
	if !v.IsBool() {
		return nil, typeError(key, "a boolean", v)
	}
	b := v.Bool()
	return &b, nil
}

func pathMappingsField(doc gjson.Result) ([]PathMapping, error) {
	v, ok := present(doc, "pathMappings")
	if !ok {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, typeError("pathMappings", "an array", v)
	}
	entries := v.Array()
	mappings := make([]PathMapping, 0, len(entries))
	for i, e := range entries {
		if !e.IsObject() {
			return nil, typeError(fmt.Sprintf("pathMappings[%d]", i), "an object", e)
		}
		mappings = append(mappings, PathMapping{
			LocalRoot:  e.Get("localRoot").String(),
			RemoteRoot: e.Get("remoteRoot").String(),
		})
	}
	return mappings, nil
}

func debugOptionsField(doc gjson.Result) ([]DebugOption, error) {
	v, ok := present(doc, "debugOptions")
	if !ok {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, typeError("debugOptions", "an array", v)
	}
	entries := v.Array()
	opts := make([]DebugOption, 0, len(entries))
	for i, e := range entries {
		if e.Type != gjson.String {
			return nil, typeError(fmt.Sprintf("debugOptions[%d]", i), "a string", e)
		}
		opts = append(opts, DebugOption(e.Str))
	}
	return opts, nil
}

func lenientString(doc gjson.Result, key string) string {
	if v, ok := present(doc, key); ok && v.Type == gjson.String {
		return v.Str
	}
	return ""
}

func lenientInt(doc gjson.Result, key string) *int {
	v, ok := present(doc, key)
	if !ok || v.Type != gjson.Number || v.Num != float64(int(v.Num)) {
		return nil
	}
	n := int(v.Num)
	return &n
}

func lenientBool(doc gjson.Result, key string) *bool {
	v, ok := present(doc, key)
	if !ok || !v.IsBool() {
		return nil
	}
	b := v.Bool()
	return &b
}
