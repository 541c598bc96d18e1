package config

import (
	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/output"
)

// Config is the resolved configuration for one run.
type Config struct {
	// Home is the destination directory, always absolute after Load.
	Home string `koanf:"home"`

	Force  bool `koanf:"force"`
	DryRun bool `koanf:"dry_run"`

	Output  output.Format `koanf:"output"`
	NoColor bool          `koanf:"no_color"`

	Verbosity int    `koanf:"verbose"`
	LogFile   string `koanf:"log_file"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.New(errors.ErrConfigInvalid, "home directory is empty")
	}
	if c.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "verbosity must not be negative, got %d", c.Verbosity)
	}
	if _, err := output.ParseFormat(string(c.Output)); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid output format")
	}
	return nil
}
