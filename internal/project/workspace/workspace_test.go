package workspace

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

func TestNewFromPaths_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	api := filepath.Join(dir, "api")
	web := filepath.Join(dir, "web")

	ws, err := NewFromPaths(web, api)
	if err != nil {
		t.Fatalf("NewFromPaths: %v", err)
	}

	folders := ws.Folders()
	if len(folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(folders))
	}
	if folders[0].Path != web || folders[1].Path != api {
		t.Errorf("folders = %v, want web then api", folders)
	}
	if folders[1].Name != "api" {
		t.Errorf("Name = %q, want api", folders[1].Name)
	}
	if folders[0].URI != PathToURI(web) {
		t.Errorf("URI = %q, want %q", folders[0].URI, PathToURI(web))
	}
}

func TestNewFromPaths_Errors(t *testing.T) {
	if _, err := NewFromPaths(); !errors.Is(err, ErrNoFolders) {
		t.Errorf("NewFromPaths() err = %v, want ErrNoFolders", err)
	}

	dir := t.TempDir()
	if _, err := NewFromPaths(dir, dir); !errors.Is(err, ErrFolderExists) {
		t.Errorf("NewFromPaths(dup) err = %v, want ErrFolderExists", err)
	}
}

func TestNewFromPaths_RelativeIsMadeAbsolute(t *testing.T) {
	ws, err := NewFromPaths("svc")
	if err != nil {
		t.Fatalf("NewFromPaths: %v", err)
	}
	want, _ := filepath.Abs("svc")
	if got := ws.Folders()[0].Path; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestWorkspace_AddFolder(t *testing.T) {
	dir := t.TempDir()
	ws := New()

	if err := ws.AddFolder(dir); err != nil {
		t.Fatalf("AddFolder: %v", err)
	}
	if err := ws.AddFolder(filepath.Join(dir, ".")); !errors.Is(err, ErrFolderExists) {
		t.Errorf("second AddFolder err = %v, want ErrFolderExists", err)
	}
	if n := len(ws.Folders()); n != 1 {
		t.Errorf("got %d folders after duplicate add, want 1", n)
	}
}

func TestWorkspace_Lookup(t *testing.T) {
	dir := t.TempDir()
	ws, err := NewFromPaths(dir)
	if err != nil {
		t.Fatalf("NewFromPaths: %v", err)
	}

	f, ok := ws.Lookup(dir)
	if !ok || f.Path != dir {
		t.Errorf("Lookup(%q) = %v, %v", dir, f, ok)
	}
	if _, ok := ws.Lookup(filepath.Join(dir, "child")); ok {
		t.Error("Lookup matched a path below the folder; want exact match only")
	}
}

func TestWorkspace_FoldersIsCopy(t *testing.T) {
	ws, err := NewFromPaths(t.TempDir())
	if err != nil {
		t.Fatalf("NewFromPaths: %v", err)
	}

	folders := ws.Folders()
	folders[0].Name = "changed"
	if ws.Folders()[0].Name == "changed" {
		t.Error("mutating Folders() result changed the workspace")
	}
}

func TestWorkspace_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	ws := New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = ws.AddFolder(filepath.Join(dir, string(rune('a'+i))))
		}()
		go func() {
			defer wg.Done()
			_ = ws.Folders()
			_, _ = ws.Lookup(dir)
		}()
	}
	wg.Wait()

	if n := len(ws.Folders()); n != 20 {
		t.Errorf("got %d folders, want 20", n)
	}
}

func TestPathToURI(t *testing.T) {
	got := PathToURI("/srv/my app")
	if filepath.Separator == '/' && got != "file:///srv/my%20app" {
		t.Errorf("PathToURI = %q, want file:///srv/my%%20app", got)
	}
}
