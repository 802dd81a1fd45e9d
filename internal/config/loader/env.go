package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type an environment value is parsed as.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

var errNotBool = errors.New("not a boolean")

func (k Kind) parse(s string) (any, error) {
	switch k {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "yes", "on":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		}
		return nil, errNotBool
	default:
		return s, nil
	}
}

// Binding ties an environment variable to a settings path.
type Binding struct {
	Var  string
	Path string
	Kind Kind
}

// LookupFunc reports the value of an environment variable.
// os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// EnvError reports a variable whose value does not parse as its kind.
type EnvError struct {
	Var   string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment variable %s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// FromEnv builds a settings map from the bound variables that are set.
// A variable set to the empty string is a value, not unset.
func FromEnv(lookup LookupFunc, bindings []Binding) (map[string]any, error) {
	m := map[string]any{}
	for _, b := range bindings {
		raw, ok := lookup(b.Var)
		if !ok {
			continue
		}
		v, err := b.Kind.parse(raw)
		if err != nil {
			return nil, &EnvError{Var: b.Var, Value: raw, Err: err}
		}
		if err := SetPath(m, b.Path, v); err != nil {
			return nil, fmt.Errorf("binding %s: %w", b.Var, err)
		}
	}
	return m, nil
}
