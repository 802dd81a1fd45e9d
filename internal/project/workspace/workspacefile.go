package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// WorkspaceFile is the content of a VS Code .code-workspace file.
type WorkspaceFile struct {
	Folders  []WorkspaceFolderEntry `json:"folders"`
	Settings map[string]any         `json:"settings,omitempty"`
	// Launch is kept raw so each configuration keeps its own text.
	Launch json.RawMessage `json:"launch,omitempty"`
}

// WorkspaceFolderEntry is one element of the "folders" array.
type WorkspaceFolderEntry struct {
	// Path is absolute or relative to the workspace file.
	Path string `json:"path"`
	Name string `json:"name,omitempty"`
}

// ParseWorkspaceFile decodes workspace file content, which may contain
// comments and trailing commas.
func ParseWorkspaceFile(data []byte) (*WorkspaceFile, error) {
	var wf WorkspaceFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// LoadWorkspaceFile reads and decodes a .code-workspace file.
func LoadWorkspaceFile(path string) (*WorkspaceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	wf, err := ParseWorkspaceFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace file %s: %w", path, err)
	}
	return wf, nil
}

// OpenFromWorkspaceFile builds a Workspace from a .code-workspace file.
// Relative folders resolve against the file's directory and entry names
// replace the default folder names.
func OpenFromWorkspaceFile(path string) (*Workspace, error) {
	wf, err := LoadWorkspaceFile(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	ws := New()
	for _, entry := range wf.Folders {
		dir := entry.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		err := ws.AddFolder(dir)
		if errors.Is(err, ErrFolderExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("workspace file %s: folder %q: %w", path, entry.Path, err)
		}
		if entry.Name != "" {
			ws.folders[len(ws.folders)-1].Name = entry.Name
		}
	}

	if len(wf.Launch) > 0 {
		configs, err := ParseLaunchConfigurations(wf.Launch)
		if err != nil {
			return nil, fmt.Errorf("workspace file %s: %w", path, err)
		}
		ws.launch = configs
	}
	return ws, nil
}
