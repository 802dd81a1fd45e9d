package config

import (
	"errors"
	"fmt"

	"github.com/dshills/attachcfg/internal/config/loader"
)

var (
	// ErrSettingNotFound indicates the setting path doesn't exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue indicates a setting outside its allowed set.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrUnknownSection indicates a settings file key that is not a section.
	ErrUnknownSection = errors.New("unknown settings section")

	ErrInvalidPath       = loader.ErrInvalidPath
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat
)

// TypeError describes a setting whose value has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("setting %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
