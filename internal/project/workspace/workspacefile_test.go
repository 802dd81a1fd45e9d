package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWorkspaceFile(t *testing.T) {
	tmpDir := t.TempDir()
	wsFile := filepath.Join(tmpDir, "test.code-workspace")

	content := `{
		"folders": [
			{"path": "project1"},
			{"path": "project2", "name": "My Project"}
		],
		"settings": {
			"python.defaultInterpreterPath": "/usr/bin/python3"
		}
	}`

	if err := os.WriteFile(wsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loaded, err := LoadWorkspaceFile(wsFile)
	if err != nil {
		t.Fatalf("LoadWorkspaceFile error: %v", err)
	}

	if len(loaded.Folders) != 2 {
		t.Errorf("Expected 2 folders, got %d", len(loaded.Folders))
	}

	if loaded.Folders[0].Path != "project1" {
		t.Errorf("Folder[0].Path = %q, want project1", loaded.Folders[0].Path)
	}

	if loaded.Folders[1].Name != "My Project" {
		t.Errorf("Folder[1].Name = %q, want 'My Project'", loaded.Folders[1].Name)
	}
}

func TestLoadWorkspaceFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	wsFile := filepath.Join(tmpDir, "bad.code-workspace")
	if err := os.WriteFile(wsFile, []byte(`{"folders": [`), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadWorkspaceFile(wsFile); err == nil {
		t.Error("expected error for malformed workspace file")
	}
}

func TestOpenFromWorkspaceFile(t *testing.T) {
	tmpDir := t.TempDir()

	project1 := filepath.Join(tmpDir, "project1")
	project2 := filepath.Join(tmpDir, "project2")
	_ = os.MkdirAll(project1, 0o755)
	_ = os.MkdirAll(project2, 0o755)

	wsFile := filepath.Join(tmpDir, "test.code-workspace")
	content := `{
		// VS Code writes workspace files as JSON with comments.
		"folders": [
			{"path": "project1"},
			{"path": "project2", "name": "Custom Name"},
			{"path": "./project1"},
		],
		"launch": {
			"version": "0.2.0",
			"configurations": [
				{"name": "Run", "type": "python", "request": "launch", "program": "main.py"},
				{"name": "Attach", "type": "python", "request": "attach", "port": 5678},
			],
		},
	}`
	if err := os.WriteFile(wsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write workspace file: %v", err)
	}

	ws, err := OpenFromWorkspaceFile(wsFile)
	if err != nil {
		t.Fatalf("OpenFromWorkspaceFile error: %v", err)
	}

	folders := ws.Folders()
	if len(folders) != 2 {
		t.Fatalf("Expected 2 folders, got %d", len(folders))
	}
	if folders[0].Path != project1 {
		t.Errorf("Folder[0].Path = %q, want %q", folders[0].Path, project1)
	}
	if folders[1].Name != "Custom Name" {
		t.Errorf("Folder[1].Name = %q, want 'Custom Name'", folders[1].Name)
	}

	launch := ws.LaunchConfigurations()
	if len(launch) != 2 {
		t.Fatalf("Expected 2 launch configurations, got %d", len(launch))
	}
	attach := AttachConfigurations(launch)
	if len(attach) != 1 || attach[0].Name != "Attach" {
		t.Errorf("AttachConfigurations = %v, want one named Attach", attach)
	}
}
