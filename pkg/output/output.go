// Package output writes the expanded script to its destination.
// Destinations are replaced atomically: content lands in a sibling temp
// file first and is renamed into place, so a failed run never leaves a
// half-written script behind.
package output

import (
	"io/fs"

	"github.com/arthur-debert/shld/pkg/errors"
	"github.com/arthur-debert/shld/pkg/types"
)

// tmpSuffix marks the sibling temp file used for atomic replacement.
const tmpSuffix = ".shld-tmp"

// ScriptPerm is the mode for emitted scripts.
const ScriptPerm fs.FileMode = 0755

// Write stores data at path. An existing destination is an error unless
// force is set.
func Write(fsys types.FS, path string, data []byte, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrOutputExists,
			"file %s exists; use --force to overwrite", path).
			WithDetail("path", path)
	}

	tmp := path + tmpSuffix
	if err := fsys.WriteFile(tmp, data, ScriptPerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write output to %s", path)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path)
	}
	return nil
}
