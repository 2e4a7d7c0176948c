package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	modes map[string]fs.FileMode

	// Error injection: operations touching these paths fail
	errorPaths map[string]error
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		modes:      make(map[string]fs.FileMode),
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) injected(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.injected(name); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(data)), mode: m.modes[name]}, nil
	}
	// Implicit directory: any file below this path makes it a directory
	prefix := name + "/"
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return &memFileInfo{name: filepath.Base(name), mode: 0755 | fs.ModeDir, dir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.injected(name); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected(name); err != nil {
		return err
	}

	name = filepath.Clean(name)
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[name] = stored
	m.modes[name] = perm
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	// Directories are implicit; creating one is always fine
	return m.injected(path)
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected(oldpath); err != nil {
		return err
	}
	if err := m.injected(newpath); err != nil {
		return err
	}

	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	data, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	m.files[newpath] = data
	m.modes[newpath] = m.modes[oldpath]
	delete(m.files, oldpath)
	delete(m.modes, oldpath)
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injected(name); err != nil {
		return err
	}

	name = filepath.Clean(name)
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	delete(m.modes, name)
	return nil
}

// Exists reports whether a file exists, for test assertions
func (m *MemoryFS) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(name)]
	return ok
}

// memFileInfo implements fs.FileInfo for in-memory files
type memFileInfo struct {
	name string
	size int64
	mode fs.FileMode
	dir  bool
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() fs.FileMode  { return i.mode }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.dir }
func (i *memFileInfo) Sys() interface{}   { return nil }
