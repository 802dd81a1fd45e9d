// Package editor models the editor state consulted when resolving debug
// configurations: the currently active document and its language.
package editor

import (
	"context"
	"path/filepath"
	"strings"
)

// Language identifiers used by the resolver.
const (
	LanguagePython    = "python"
	LanguagePlaintext = "plaintext"
)

// Document is a snapshot of an open document.
type Document struct {
	// Path is the document's file system path.
	Path string
	// LanguageID is the LSP language identifier (e.g. "python").
	LanguageID string
}

// NewDocument returns a document for path with its language detected from
// the file name.
func NewDocument(path string) Document {
	return Document{Path: path, LanguageID: DetectLanguageID(path)}
}

// IsPython reports whether the document is a Python source file.
func (d Document) IsPython() bool {
	return d.LanguageID == LanguagePython
}

// Dir returns the directory containing the document.
func (d Document) Dir() string {
	return filepath.Dir(d.Path)
}

// ActiveEditor exposes the currently focused document, if any.
type ActiveEditor interface {
	ActiveDocument(ctx context.Context) (Document, bool)
}

// Static is an ActiveEditor backed by a fixed snapshot.
// The zero value has no active document.
type Static struct {
	doc    Document
	active bool
}

// NewStatic returns an ActiveEditor whose active document is doc.
func NewStatic(doc Document) *Static {
	return &Static{doc: doc, active: doc.Path != ""}
}

// NoActiveEditor returns an ActiveEditor with no open document.
func NoActiveEditor() *Static {
	return &Static{}
}

// ActiveDocument implements ActiveEditor.
func (s *Static) ActiveDocument(context.Context) (Document, bool) {
	if s == nil || !s.active {
		return Document{}, false
	}
	return s.doc, true
}

// DetectLanguageID returns the LSP language ID for a file path.
func DetectLanguageID(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".py", ".pyw", ".pyi":
		return LanguagePython
	case ".go":
		return "go"
	case ".rs":
		return "rust"
	case ".ts":
		return "typescript"
	case ".tsx":
		return "typescriptreact"
	case ".js", ".mjs", ".cjs":
		return "javascript"
	case ".jsx":
		return "javascriptreact"
	case ".rb":
		return "ruby"
	case ".c":
		return "c"
	case ".cpp", ".cc", ".cxx", ".h", ".hpp":
		return "cpp"
	case ".html", ".htm", ".jinja", ".j2":
		return "html"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".md", ".markdown":
		return "markdown"
	case ".sh", ".bash":
		return "shellscript"
	default:
		base := strings.ToLower(filepath.Base(path))
		switch base {
		case "dockerfile":
			return "dockerfile"
		case "makefile", "gnumakefile":
			return "makefile"
		case "sconstruct", "sconscript":
			return LanguagePython
		}
		return LanguagePlaintext
	}
}
