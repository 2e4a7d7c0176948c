package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// WriteScript stores a script in the in-memory filesystem.
// It fails the test if the write fails.
func WriteScript(t *testing.T, fs *MemoryFS, path, content string) {
	t.Helper()

	if err := fs.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to write script %s: %v", path, err)
	}
}
