package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/output"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the flags the root command registers.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("housekeeper", pflag.ContinueOnError)
	fs.String("home", "", "")
	fs.BoolP("force", "f", false, "")
	fs.Bool("dry-run", false, "")
	fs.StringP("output", "o", "text", "")
	fs.Bool("no-color", false, "")
	fs.CountP("verbose", "v", "")
	fs.String("log-file", "", "")
	fs.String(ConfigFlag, "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "housekeeper.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.False(t, cfg.Force)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, output.FormatText, cfg.Output)
	assert.Equal(t, 0, cfg.Verbosity)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.File)
}

func TestLoad_NilFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, output.FormatText, cfg.Output)
}

func TestLoad_Flags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dest := filepath.Join(t.TempDir(), "dest")

	cfg, err := Load("", newFlags(t,
		"--home", dest,
		"-f",
		"--dry-run",
		"-o", "yaml",
		"-vv",
		"--no-color",
		"--log-file", "~/logs/hk.log",
	))
	require.NoError(t, err)

	assert.Equal(t, dest, cfg.Home)
	assert.True(t, cfg.Force)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, output.FormatYAML, cfg.Output)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, filepath.Join(home, "logs", "hk.log"), cfg.LogFile)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
home = "~/sandbox"
force = true
output = " toml "
verbose = 1
`)

	cfg, err := Load(path, newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "sandbox"), cfg.Home)
	assert.True(t, cfg.Force)
	assert.Equal(t, output.FormatTOML, cfg.Output)
	assert.Equal(t, 1, cfg.Verbosity)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
force = true
output = "toml"
`)

	cfg, err := Load(path, newFlags(t, "--output", "yaml"))
	require.NoError(t, err)

	assert.Equal(t, output.FormatYAML, cfg.Output, "changed flag wins")
	assert.True(t, cfg.Force, "unchanged flag keeps the file value")
}

func TestLoad_KeepsWhitespaceInPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dest := filepath.Join(t.TempDir(), "h ")

	cfg, err := Load("", newFlags(t, "--home", dest, "--log-file", " ~/hk.log"))
	require.NoError(t, err)

	assert.Equal(t, dest, cfg.Home)
	assert.Equal(t, " ~/hk.log", cfg.LogFile, "only a leading ~ is expanded")
}

func TestLoad_RelativeHomeIsAbsolute(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := Load("", newFlags(t, "--home", "sandbox"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "sandbox"), cfg.Home)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name     string
		cfgFile  func(t *testing.T) string
		args     []string
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing config file",
			cfgFile:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "malformed config file",
			cfgFile:  func(t *testing.T) string { return writeConfig(t, "force = [unterminated") },
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "unknown output format flag",
			args:     []string{"-o", "xml"},
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "unknown output format in file",
			cfgFile:  func(t *testing.T) string { return writeConfig(t, `output = "json"`) },
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "negative verbosity",
			cfgFile:  func(t *testing.T) string { return writeConfig(t, `verbose = -1`) },
			wantCode: errors.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile := ""
			if tt.cfgFile != nil {
				cfgFile = tt.cfgFile(t)
			}

			_, err := Load(cfgFile, newFlags(t, tt.args...))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDefaultConfigContent(t *testing.T) {
	content := DefaultConfigContent()
	assert.Contains(t, content, "force = false")
	assert.Contains(t, content, `output = "text"`)
}
