package loader

import (
	"errors"
	"slices"
	"strings"
)

// ErrInvalidPath is returned for an empty path segment or for a path that
// runs through a value that is not a map.
var ErrInvalidPath = errors.New("invalid setting path")

// Merge overlays src onto dst and returns dst. Maps present in both merge
// key by key; any other src value replaces dst's.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, v := range src {
		sub, srcIsMap := v.(map[string]any)
		cur, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[k] = Merge(cur, sub)
			continue
		}
		dst[k] = cloneValue(v)
	}
	return dst
}

// Clone deep-copies a settings map.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

func splitPath(path string) ([]string, bool) {
	parts := strings.Split(path, ".")
	return parts, !slices.Contains(parts, "")
}

// Lookup returns the value at a dotted path such as "output.format".
func Lookup(m map[string]any, path string) (any, bool) {
	parts, ok := splitPath(path)
	if !ok {
		return nil, false
	}
	var cur any = m
	for _, p := range parts {
		node, isMap := cur.(map[string]any)
		if !isMap {
			return nil, false
		}
		if cur, ok = node[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath stores value at a dotted path, creating maps along the way.
func SetPath(m map[string]any, path string, value any) error {
	parts, ok := splitPath(path)
	if !ok {
		return ErrInvalidPath
	}
	node := m
	for _, p := range parts[:len(parts)-1] {
		next, exists := node[p]
		if !exists {
			child := map[string]any{}
			node[p] = child
			node = child
			continue
		}
		child, isMap := next.(map[string]any)
		if !isMap {
			return ErrInvalidPath
		}
		node = child
	}
	node[parts[len(parts)-1]] = value
	return nil
}
