package loader

import (
	"errors"
	"strconv"
	"testing"
)

func lookupMap(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

var testBindings = []Binding{
	{Var: "ATTACHCFG_OS", Path: "platform.os", Kind: KindString},
	{Var: "ATTACHCFG_OUTPUT_INDENT", Path: "output.indent", Kind: KindInt},
	{Var: "ATTACHCFG_OUTPUT_COLOR", Path: "output.color", Kind: KindBool},
}

func TestFromEnv(t *testing.T) {
	m, err := FromEnv(lookupMap(map[string]string{
		"ATTACHCFG_OS":            "windows",
		"ATTACHCFG_OUTPUT_INDENT": " 4 ",
		"ATTACHCFG_OUTPUT_COLOR":  "off",
		"ATTACHCFG_UNBOUND":       "ignored",
	}), testBindings)
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}

	want := map[string]any{
		"platform": map[string]any{"os": "windows"},
		"output":   map[string]any{"indent": 4, "color": false},
	}
	if len(m) != len(want) {
		t.Errorf("FromEnv = %v, want %v", m, want)
	}
	for _, path := range []string{"platform.os", "output.indent", "output.color"} {
		got, _ := Lookup(m, path)
		exp, _ := Lookup(want, path)
		if got != exp {
			t.Errorf("%s = %#v, want %#v", path, got, exp)
		}
	}
}

func TestFromEnv_EmptyIsAValue(t *testing.T) {
	m, err := FromEnv(lookupMap(map[string]string{"ATTACHCFG_OS": ""}), testBindings)
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if v, ok := Lookup(m, "platform.os"); !ok || v != "" {
		t.Errorf("platform.os = %#v, %v; want empty string", v, ok)
	}
}

func TestFromEnv_Unset(t *testing.T) {
	m, err := FromEnv(lookupMap(nil), testBindings)
	if err != nil || len(m) != 0 {
		t.Errorf("FromEnv(no env) = %v, %v; want empty map", m, err)
	}
}

func TestFromEnv_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"int", "ATTACHCFG_OUTPUT_INDENT", "wide"},
		{"bool", "ATTACHCFG_OUTPUT_COLOR", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupMap(map[string]string{tt.env: tt.value}), testBindings)
			var ee *EnvError
			if !errors.As(err, &ee) || ee.Var != tt.env || ee.Value != tt.value {
				t.Fatalf("err = %v, want EnvError for %s", err, tt.env)
			}
		})
	}

	_, err := FromEnv(lookupMap(map[string]string{"ATTACHCFG_OUTPUT_INDENT": "x"}), testBindings)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("err = %v, want it to wrap strconv.ErrSyntax", err)
	}
}

func TestFromEnv_ConflictingPaths(t *testing.T) {
	bindings := []Binding{
		{Var: "A", Path: "output", Kind: KindString},
		{Var: "B", Path: "output.format", Kind: KindString},
	}
	_, err := FromEnv(lookupMap(map[string]string{"A": "json", "B": "yaml"}), bindings)
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestKindParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "On"} {
		if v, err := KindBool.parse(s); err != nil || v != true {
			t.Errorf("parse(%q) = %v, %v; want true", s, v, err)
		}
	}
	for _, s := range []string{"0", "false", "No", "off"} {
		if v, err := KindBool.parse(s); err != nil || v != false {
			t.Errorf("parse(%q) = %v, %v; want false", s, v, err)
		}
	}
}
