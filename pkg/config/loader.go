package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "ACTIONKIT_"

//go:embed defaults.toml
var defaultConfig []byte

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile overrides the XDG user config file. A missing explicit file
	// is an error; a missing default file is not.
	ConfigFile string

	// Overrides are applied last, keyed by dotted path (e.g. "naming.max_suffix")
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load builds the configuration from defaults, the user file and the environment
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if !opts.SkipUserConfig {
		path, explicit := opts.ConfigFile, opts.ConfigFile != ""
		if !explicit {
			path = paths.New().ConfigFilePath()
		}

		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path)
		}
	}

	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps ACTIONKIT_NAMING_MAX_SUFFIX to naming.max_suffix. Only the
// first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
