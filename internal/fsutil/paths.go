// Package fsutil holds the small filesystem helpers the executor and
// catalog share.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory and its parents if missing.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// UniquePath returns path itself when nothing occupies it, otherwise
// the first free variant with a numeric suffix: name.ext, name_1.ext,
// name_2.ext and so on. Directories get the suffix appended to their
// full name.
func UniquePath(path string) string {
	if !Exists(path) {
		return path
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if !Exists(candidate) {
			return candidate
		}
	}
}

// WithinRoot reports whether path sits inside root after cleaning.
// The executor refuses to move anything that would land outside the
// scan root.
func WithinRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
