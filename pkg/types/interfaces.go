package types

import "io/fs"

// FS is the filesystem interface used by shld for all file access.
// The OS implementation lives in pkg/filesystem; tests use the in-memory
// implementation from pkg/testutil.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Operations used for atomic output replacement
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
