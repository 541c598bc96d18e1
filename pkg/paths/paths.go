package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/housekeeper/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// DotPrefix is prepended to every linked name.
const DotPrefix = "."

// HomeDirectory returns the user's home directory.
// It tries os.UserHomeDir(), then $HOME, then the XDG home lookup.
// If all of them come up empty it returns an error rather than guessing.
func HomeDirectory() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir := os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	if xdg.Home != "" {
		return xdg.Home, nil
	}

	return "", errors.New(errors.ErrHomeNotFound,
		"unable to determine home directory: set HOME or pass --home")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := HomeDirectory()
	if err != nil {
		return "", err
	}

	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// Canonicalize returns the absolute, symlink free location of path.
// The path must exist. Errors are the raw *fs.PathError from the os package;
// callers attach the error code that fits their step.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// DotName returns name with the dot prefix.
func DotName(name string) string {
	return DotPrefix + name
}

// DotPath returns <dir>/.<name>.
func DotPath(dir, name string) string {
	return filepath.Join(dir, DotName(name))
}
