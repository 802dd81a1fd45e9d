package workspace

import (
	"path/filepath"
	"testing"
)

func folders(paths ...string) []Folder {
	result := make([]Folder, len(paths))
	for i, p := range paths {
		result[i] = Folder{Path: p, Name: p}
	}
	return result
}

func TestMatcher_Match(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("host paths in this table are Unix paths")
	}
	m := Matcher{}

	tests := []struct {
		name    string
		folders []Folder
		file    string
		want    string
		wantOK  bool
	}{
		{"inside", folders("/ws"), "/ws/app.py", "/ws", true},
		{"folder itself", folders("/ws"), "/ws", "/ws", true},
		{"sibling prefix", folders("/ws"), "/wsx/app.py", "", false},
		{"outside", folders("/ws"), "/tmp/app.py", "", false},
		{"nested wins", folders("/ws", "/ws/pkg"), "/ws/pkg/mod.py", "/ws/pkg", true},
		{"nested wins in any order", folders("/ws/pkg", "/ws"), "/ws/pkg/mod.py", "/ws/pkg", true},
		{"unclean input", folders("/ws/"), "/ws/./a/../b.py", "/ws/", true},
		{"root folder", folders("/"), "/etc/app.py", "/", true},
		{"case sensitive", folders("/WS"), "/ws/app.py", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.folders, tt.file)
			if ok != tt.wantOK || got.Path != tt.want {
				t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.file, got.Path, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatcher_MatchWindows(t *testing.T) {
	m := Matcher{Windows: true}

	tests := []struct {
		name    string
		folders []Folder
		file    string
		want    string
		wantOK  bool
	}{
		{"case insensitive", folders(`C:\Work\Proj`), `c:\work\proj\main.py`, `C:\Work\Proj`, true},
		{"mixed slashes", folders(`C:\Work\Proj`), `C:/Work/Proj/pkg/mod.py`, `C:\Work\Proj`, true},
		{"nested wins", folders(`C:\Work`, `C:\Work\Proj\api`), `C:\WORK\PROJ\API\app.py`, `C:\Work\Proj\api`, true},
		{"drive root", folders(`D:\`), `d:\data\x.py`, `D:\`, true},
		{"sibling prefix", folders(`C:\Work\Proj`), `C:\Work\Project\main.py`, "", false},
		{"other drive", folders(`C:\Work`), `D:\Work\main.py`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.folders, tt.file)
			if ok != tt.wantOK || got.Path != tt.want {
				t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.file, got.Path, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatcher_NoFolders(t *testing.T) {
	if _, ok := (Matcher{}).Match(nil, "/ws/app.py"); ok {
		t.Error("Match with no folders reported a match")
	}
}
