package loader

import (
	"errors"
	"testing"
)

func TestMerge_LayersSettings(t *testing.T) {
	defaults := map[string]any{
		"logging": map[string]any{"level": "warn", "format": "text"},
		"output":  map[string]any{"format": "json", "indent": 2},
	}
	file := map[string]any{
		"logging": map[string]any{"level": "debug"},
		"adapter": map[string]any{"pythonPath": "/usr/bin/python3"},
	}

	m := Merge(defaults, file)

	checks := map[string]any{
		"logging.level":      "debug",
		"logging.format":     "text",
		"output.indent":      2,
		"adapter.pythonPath": "/usr/bin/python3",
	}
	for path, want := range checks {
		if got, _ := Lookup(m, path); got != want {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}
}

func TestMerge_ScalarReplacesMap(t *testing.T) {
	m := Merge(
		map[string]any{"output": map[string]any{"format": "json"}},
		map[string]any{"output": "yaml"},
	)
	if m["output"] != "yaml" {
		t.Errorf("output = %v, want yaml", m["output"])
	}
}

func TestMerge_DoesNotShareSource(t *testing.T) {
	src := map[string]any{"adapter": map[string]any{"pythonPath": "a"}}
	m := Merge(nil, src)
	src["adapter"].(map[string]any)["pythonPath"] = "b"

	if got, _ := Lookup(m, "adapter.pythonPath"); got != "a" {
		t.Errorf("adapter.pythonPath = %v after mutating source, want a", got)
	}
}

func TestClone(t *testing.T) {
	orig := map[string]any{
		"output": map[string]any{"format": "json"},
		"list":   []any{map[string]any{"x": 1}},
	}
	c := Clone(orig)
	c["output"].(map[string]any)["format"] = "yaml"
	c["list"].([]any)[0].(map[string]any)["x"] = 2

	if got, _ := Lookup(orig, "output.format"); got != "json" {
		t.Errorf("original output.format = %v", got)
	}
	if got := orig["list"].([]any)[0].(map[string]any)["x"]; got != 1 {
		t.Errorf("original list element = %v", got)
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestLookupAndSetPath(t *testing.T) {
	m := map[string]any{}
	if err := SetPath(m, "logging.level", "info"); err != nil {
		t.Fatalf("SetPath error: %v", err)
	}
	if v, ok := Lookup(m, "logging.level"); !ok || v != "info" {
		t.Errorf("Lookup = %v, %v", v, ok)
	}
	if _, ok := Lookup(m, "logging.level.deeper"); ok {
		t.Error("Lookup through a scalar succeeded")
	}
	if _, ok := Lookup(m, "logging..level"); ok {
		t.Error("Lookup with an empty segment succeeded")
	}

	for _, path := range []string{"", "logging.", "logging.level.sub"} {
		if err := SetPath(m, path, "x"); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("SetPath(%q) err = %v, want ErrInvalidPath", path, err)
		}
	}
}
