package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/housekeeper/pkg/filesystem"
	"github.com/spf13/afero"
)

// Environment is an isolated dotfiles/home pair on the real filesystem.
type Environment struct {
	Root         string
	DotfilesRoot string
	HomeDir      string
	FS           filesystem.FS

	t *testing.T
}

// NewEnvironment creates <tmp>/dotfiles and <tmp>/home and points HOME at
// the latter. Root is canonical so links can be compared to expected paths.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Environment{
		Root:         root,
		DotfilesRoot: CreateDir(t, root, "dotfiles"),
		HomeDir:      CreateDir(t, root, "home"),
		FS:           filesystem.NewOS(),
		t:            t,
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// Dotfile creates a file in the dotfiles directory and returns its path.
func (e *Environment) Dotfile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.DotfilesRoot, name, content)
}

// DotfileDir creates a subdirectory in the dotfiles directory.
func (e *Environment) DotfileDir(name string) string {
	e.t.Helper()
	return CreateDir(e.t, e.DotfilesRoot, name)
}

// HomeFile creates a file in the home directory.
func (e *Environment) HomeFile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.HomeDir, name, content)
}

// HomeDirEntry creates a directory in the home directory.
func (e *Environment) HomeDirEntry(name string) string {
	e.t.Helper()
	return CreateDir(e.t, e.HomeDir, name)
}

// HomeSymlink creates <home>/name pointing at target.
func (e *Environment) HomeSymlink(name, target string) string {
	e.t.Helper()
	link := filepath.Join(e.HomeDir, name)
	CreateSymlink(e.t, target, link)
	return link
}

// HomePath returns <home>/name.
func (e *Environment) HomePath(name string) string {
	return filepath.Join(e.HomeDir, name)
}

// MemoryEnvironment is a dotfiles/home pair on an in-memory filesystem.
// It cannot hold symlinks, so it suits scan and skip tests.
type MemoryEnvironment struct {
	DotfilesRoot string
	HomeDir      string
	Mem          afero.Fs
	FS           filesystem.FS

	t *testing.T
}

// NewMemoryEnvironment creates /dotfiles and /home in a MemMapFs.
func NewMemoryEnvironment(t *testing.T) *MemoryEnvironment {
	t.Helper()

	mem := afero.NewMemMapFs()
	env := &MemoryEnvironment{
		DotfilesRoot: "/dotfiles",
		HomeDir:      "/home/user",
		Mem:          mem,
		FS:           filesystem.NewAfero(mem),
		t:            t,
	}
	for _, dir := range []string{env.DotfilesRoot, env.HomeDir} {
		if err := mem.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// File writes path (absolute inside the memory fs) with content.
func (e *MemoryEnvironment) File(path, content string) string {
	e.t.Helper()
	if err := afero.WriteFile(e.Mem, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Dir creates path (absolute inside the memory fs).
func (e *MemoryEnvironment) Dir(path string) string {
	e.t.Helper()
	if err := e.Mem.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("Failed to create %s: %v", path, err)
	}
	return path
}
