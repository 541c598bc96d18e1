package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFlag is the flag that names an explicit config file. It is not a
// config key itself.
const ConfigFlag = "config"

// Load builds the configuration.
// Precedence (highest to lowest): flags > config file > embedded defaults.
// Only flags the user actually set are applied.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Explicit config file
	if cfgFile != "" {
		expanded, err := paths.ExpandHome(cfgFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(expanded), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", expanded).WithPath(expanded)
		}
		cfgFile = expanded
	}

	// 3. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagToKey(flags)), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode configuration")
	}
	cfg.File = cfgFile

	// 5. Post-process
	if err := resolvePaths(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// flagToKey only lets changed flags through and turns kebab-case names
// into config keys.
func flagToKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || f.Name == ConfigFlag {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
	}
}

// resolvePaths fills in the default home and makes paths absolute.
func resolvePaths(cfg *Config) error {
	if cfg.Home == "" {
		home, err := paths.HomeDirectory()
		if err != nil {
			return err
		}
		cfg.Home = home
	}

	home, err := paths.ExpandHome(cfg.Home)
	if err != nil {
		return err
	}
	if home, err = filepath.Abs(home); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "cannot make home directory %s absolute", cfg.Home).WithPath(cfg.Home)
	}
	cfg.Home = home

	if cfg.LogFile != "" {
		logFile, err := paths.ExpandHome(cfg.LogFile)
		if err != nil {
			return err
		}
		cfg.LogFile = logFile
	}

	return nil
}
