// Package fsys implements the read-only FileSystem port, grounded on the
// original fs_adapter's thin wrapper over std::fs: unreadable directories
// yield empty results rather than errors.
package fsys

import (
	"os"

	"github.com/leechristophermurray/launch/internal/ports"
)

// FS is the production read-only filesystem adapter.
type FS struct{}

// New builds a filesystem adapter.
func New() *FS { return &FS{} }

// ListDir returns the entries of path, or an empty slice if path cannot
// be read.
func (FS) ListDir(path string) ([]ports.FileEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil
	}
	out := make([]ports.FileEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ports.FileEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// IsDir reports whether path exists and is a directory.
func (FS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists.
func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
