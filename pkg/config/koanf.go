package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/xml2struct/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: XML2STRUCT_OUTPUT_FORMAT sets
// output.format.
const EnvPrefix = "XML2STRUCT_"

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// UserConfigPath overrides the per-user config location. Empty means
	// DefaultUserConfigPath().
	UserConfigPath string

	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("output.format").
	Overrides map[string]interface{}
}

// DefaultUserConfigPath returns $XDG_CONFIG_HOME/xml2struct/config.toml
func DefaultUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "xml2struct", "config.toml")
}

// Load builds the configuration from all layers, later layers winning
func Load(opts LoadOptions) (*Config, error) {
	k, err := newKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

func newKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = DefaultUserConfigPath()
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath).
				WithDetail("path", userPath)
		}
	}

	// 3. Load explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
	}

	// 4. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Load command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, nil
}

// envKey maps XML2STRUCT_INPUT_DEFAULT_EXTENSION to input.default_extension:
// the first underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Dump returns the effective configuration as TOML-style key = value lines
func Dump(opts LoadOptions) (string, error) {
	k, err := newKoanf(opts)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, key := range k.Keys() {
		fmt.Fprintf(&sb, "%s = %v\n", key, k.Get(key))
	}
	return sb.String(), nil
}
