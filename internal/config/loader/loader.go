// Package loader turns attachcfg settings sources into nested maps.
//
// A settings file is TOML or YAML, chosen by extension. Environment
// variables are read through an explicit binding table, so every variable
// has one settings path and one value kind. The config package merges the
// resulting maps in precedence order.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a settings file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported settings file format")

// Format is a settings file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the syntax implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile decodes the settings file at path. A file that does not exist
// yields a nil map and no error.
func ReadFile(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	return Decode(format, path, data)
}

// Decode parses settings text. source names the text in errors. An empty
// document decodes to an empty map.
func Decode(format Format, source string, data []byte) (map[string]any, error) {
	m := map[string]any{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, newParseError(source, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// ParseError is a syntax error in a settings file. Line and Column are
// zero when the parser does not report a position.
type ParseError struct {
	Source string
	Line   int
	Column int
	Err    error
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Source: source, Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Source, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
