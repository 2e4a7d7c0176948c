// Test Type: Unit Test
// Description: Tests for atomic output writing and overwrite protection

package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shld/pkg/errors"
	"github.com/arthur-debert/shld/pkg/output"
	"github.com/arthur-debert/shld/pkg/testutil"
)

func TestWriteNewFile(t *testing.T) {
	fs := testutil.NewMemoryFS()

	err := output.Write(fs, "/out.sh", []byte("echo hi\n"), false)

	require.NoError(t, err)
	data, err := fs.ReadFile("/out.sh")
	require.NoError(t, err)
	assert.Equal(t, "echo hi\n", string(data))
	assert.False(t, fs.Exists("/out.sh.shld-tmp"), "temp file should be renamed away")
}

func TestWriteExistingWithoutForce(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/out.sh", []byte("old\n"), 0644))

	err := output.Write(fs, "/out.sh", []byte("new\n"), false)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrOutputExists))

	// Destination is untouched.
	data, readErr := fs.ReadFile("/out.sh")
	require.NoError(t, readErr)
	assert.Equal(t, "old\n", string(data))
}

func TestWriteExistingWithForce(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/out.sh", []byte("old\n"), 0644))

	err := output.Write(fs, "/out.sh", []byte("new\n"), true)

	require.NoError(t, err)
	data, readErr := fs.ReadFile("/out.sh")
	require.NoError(t, readErr)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteFailureCleansUpTemp(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.InjectError("/out.sh.shld-tmp", assert.AnError)

	err := output.Write(fs, "/out.sh", []byte("x\n"), false)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFileWrite))
	assert.False(t, fs.Exists("/out.sh"))
}
