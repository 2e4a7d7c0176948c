package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/shld/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Default returns the built-in configuration, ignoring the user config
// file and environment.
func Default() Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in and must parse.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load builds the effective configuration. Layers, later wins:
// embedded defaults, the config file at path (DefaultUserConfigPath when
// path is empty; a missing file is fine either way), SHLD_-prefixed
// environment variables, and finally the overrides map (set CLI flags),
// keyed in koanf dot notation such as "expand.strict".
func Load(path string, overrides map[string]interface{}) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse built-in defaults")
	}

	userPath := path
	if userPath == "" {
		userPath = DefaultUserConfigPath()
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", userPath)
		}
	} else if path != "" {
		// An explicitly requested config file must exist.
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot read config file %s", path)
	}

	err := k.Load(env.Provider("SHLD_", ".", func(s string) string {
		// SHLD_EXPAND_IGNORE_MARKER -> expand.ignore_marker: only the
		// first underscore separates the section from the key.
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "SHLD_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return cfg, nil
}
