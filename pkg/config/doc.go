// Package config handles configuration management for shld.
// Settings are layered: embedded defaults, then the user config file,
// then SHLD_-prefixed environment variables, then per-run overrides
// (CLI flags). A .shld.toml next to the root script can override the
// expansion settings for that script tree.
package config
