// Package filex holds small filesystem helpers for the export flow.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory (and any parents) if it does not
// exist yet and returns its absolute path. Relative paths are resolved
// against the current working directory.
func EnsureDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SaveDownload writes downloaded content under dir, sanitizing the
// server-supplied filename so it cannot escape the directory. Returns
// the full path of the written file.
func SaveDownload(dir, filename string, content []byte) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("unusable filename %q", filename)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
