package config

import (
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/shld/pkg/errors"
	"github.com/arthur-debert/shld/pkg/types"
)

// MergeScriptLocal applies the optional .shld.toml from the root script's
// directory on top of base. Keys absent from the file keep their base
// values. A missing file returns base unchanged; an unreadable or invalid
// file is an error, since silently ignoring it would expand the script
// under settings the author did not ask for.
func MergeScriptLocal(fs types.FS, dir string, base Expand) (Expand, error) {
	path := filepath.Join(dir, ScriptConfigFile)

	if _, err := fs.Stat(path); err != nil {
		return base, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return Expand{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot read script config %s", path)
	}

	merged := Config{Expand: base}
	if err := toml.Unmarshal(data, &merged); err != nil {
		return Expand{}, errors.Wrapf(err, errors.ErrConfigParse,
			"invalid script config %s", path)
	}

	return merged.Expand, nil
}
