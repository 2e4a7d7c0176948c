// Test Type: Unit Test
// Description: Tests for the in-memory filesystem

package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSReadWrite(t *testing.T) {
	m := NewMemoryFS()

	require.NoError(t, m.WriteFile("/a/b.sh", []byte("echo hi\n"), 0755))

	data, err := m.ReadFile("/a/b.sh")
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", string(data))

	info, err := m.Stat("/a/b.sh")
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size())
	assert.False(t, info.IsDir())

	// Parent directories are implicit
	info, err = m.Stat("/a")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFSMissing(t *testing.T) {
	m := NewMemoryFS()

	_, err := m.ReadFile("/missing.sh")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = m.Stat("/missing.sh")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFSRename(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/tmp.sh", []byte("x"), 0644))

	require.NoError(t, m.Rename("/tmp.sh", "/out.sh"))

	assert.False(t, m.Exists("/tmp.sh"))
	assert.True(t, m.Exists("/out.sh"))
}

func TestMemoryFSErrorInjection(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/locked.sh", []byte("x"), 0644))

	injected := fs.ErrPermission
	m.InjectError("/locked.sh", injected)

	_, err := m.ReadFile("/locked.sh")
	assert.ErrorIs(t, err, injected)

	_, err = m.Stat("/locked.sh")
	assert.ErrorIs(t, err, injected)
}
