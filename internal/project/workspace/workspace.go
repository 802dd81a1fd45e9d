// Package workspace holds the ordered folders of an editor workspace and the
// launch configurations that travel with them.
//
// Folder order matters: when no folder contains the active document, the
// first folder is the one a debug configuration resolves against.
package workspace

import (
	"errors"
	"net/url"
	"path/filepath"
	"slices"
	"sync"
)

var (
	// ErrNoFolders is returned when a workspace is built from an empty list.
	ErrNoFolders = errors.New("workspace has no folders")
	// ErrFolderExists is returned when a folder is added twice.
	ErrFolderExists = errors.New("folder already in workspace")
)

// Folder is one root of a workspace.
type Folder struct {
	// URI is the file:// form of Path.
	URI string
	// Path is an absolute local path.
	Path string
	// Name is shown to the user; it defaults to the last path element.
	Name string
}

// NewFolder describes the folder at an absolute path.
func NewFolder(path string) Folder {
	return Folder{
		URI:  PathToURI(path),
		Path: path,
		Name: filepath.Base(path),
	}
}

// Workspace is an ordered set of folders plus the launch configurations
// loaded with them. It is safe for concurrent use.
type Workspace struct {
	mu      sync.RWMutex
	folders []Folder
	launch  []LaunchConfiguration
}

// New returns a workspace with no folders.
func New() *Workspace {
	return &Workspace{}
}

// NewFromPaths returns a workspace with one folder per path, in order.
// Relative paths are made absolute against the working directory.
func NewFromPaths(paths ...string) (*Workspace, error) {
	if len(paths) == 0 {
		return nil, ErrNoFolders
	}
	ws := New()
	for _, p := range paths {
		if err := ws.AddFolder(p); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// Folders returns a copy of the folders in workspace order.
func (w *Workspace) Folders() []Folder {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.folders)
}

// AddFolder appends the folder at path. Adding a folder that is already
// present returns ErrFolderExists and leaves the order unchanged.
func (w *Workspace) AddFolder(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexOf(abs) >= 0 {
		return ErrFolderExists
	}
	w.folders = append(w.folders, NewFolder(abs))
	return nil
}

// Lookup returns the folder whose path is exactly path.
func (w *Workspace) Lookup(path string) (Folder, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Folder{}, false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if i := w.indexOf(abs); i >= 0 {
		return w.folders[i], true
	}
	return Folder{}, false
}

func (w *Workspace) indexOf(abs string) int {
	return slices.IndexFunc(w.folders, func(f Folder) bool { return f.Path == abs })
}

// LaunchConfigurations returns the configurations loaded from a workspace
// file, in file order.
func (w *Workspace) LaunchConfigurations() []LaunchConfiguration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.launch)
}

// PathToURI converts a local path to a file:// URI.
func PathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
