package workspace

import (
	"path"
	"path/filepath"
	"strings"
)

// Matcher finds the workspace folder that contains a file.
//
// With Windows set, paths compare case-insensitively and either slash
// separates elements, whatever OS the program runs on. Otherwise paths are
// compared exactly using the host separator.
type Matcher struct {
	Windows bool
}

// Match returns the folder that most specifically contains file. A file
// equal to a folder's path is inside that folder. Nothing is made absolute,
// so relative paths only match relative folders.
func (m Matcher) Match(folders []Folder, file string) (Folder, bool) {
	target := m.normalize(file)
	best, bestLen := -1, -1
	for i, f := range folders {
		root := m.normalize(f.Path)
		if m.contains(root, target) && len(root) > bestLen {
			best, bestLen = i, len(root)
		}
	}
	if best < 0 {
		return Folder{}, false
	}
	return folders[best], true
}

func (m Matcher) normalize(p string) string {
	if !m.Windows {
		return filepath.Clean(p)
	}
	return strings.ToLower(path.Clean(strings.ReplaceAll(p, `\`, "/")))
}

func (m Matcher) contains(root, target string) bool {
	if root == target {
		return true
	}
	sep := string(filepath.Separator)
	if m.Windows {
		sep = "/"
	}
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return strings.HasPrefix(target, root)
}
