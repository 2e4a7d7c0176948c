package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ScriptConfigFile is the name of the optional per-script configuration
// file, looked up in the root script's directory.
const ScriptConfigFile = ".shld.toml"

// Expand holds the settings consumed by the expander.
type Expand struct {
	// IgnoreMarker is the comment token that protects the following
	// source directive from expansion.
	IgnoreMarker string `koanf:"ignore_marker" toml:"ignore_marker"`

	// Shells lists interpreter names accepted in the root shebang.
	Shells []string `koanf:"shells" toml:"shells"`

	// CheckShebang requires the root script to start with a supported
	// shebang line.
	CheckShebang bool `koanf:"check_shebang" toml:"check_shebang"`

	// Strict fails the run when an ignore marker is not followed by a
	// source directive.
	Strict bool `koanf:"strict" toml:"strict"`
}

// Config is the root configuration structure.
type Config struct {
	Expand Expand `koanf:"expand" toml:"expand"`
}

// DefaultUserConfigPath returns the location of the user configuration
// file under the XDG config directory.
func DefaultUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "shld", "config.toml")
}
