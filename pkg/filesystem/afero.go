package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/housekeeper/pkg/paths"
	"github.com/spf13/afero"
)

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// maxLinkHops bounds symlink resolution in Canonicalize.
const maxLinkHops = 40

// NewAfero creates a new afero filesystem implementation.
// Symlink support depends on the backing Fs: OsFs and BasePathFs have it,
// MemMapFs does not and reports afero.ErrNoSymlink. Paths on backends other
// than OsFs are virtual and must be absolute.
func NewAfero(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

// Canonicalize resolves symlinks one component at a time using Lstat and
// Readlink, so links inside a BasePathFs are followed within that Fs.
// OsFs is handed to paths.Canonicalize.
func (a *aferoFS) Canonicalize(path string) (string, error) {
	if _, ok := a.fs.(*afero.OsFs); ok {
		return paths.Canonicalize(path)
	}
	if !filepath.IsAbs(path) {
		return "", &os.PathError{Op: "canonicalize", Path: path, Err: fs.ErrInvalid}
	}

	resolved := string(filepath.Separator)
	pending := splitPath(path)
	hops := 0

	for len(pending) > 0 {
		next := filepath.Join(resolved, pending[0])
		pending = pending[1:]

		info, err := a.Lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &os.PathError{Op: "canonicalize", Path: path, Err: errTooManyLinks}
		}
		target, err := a.Readlink(next)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(resolved, target)
		}
		pending = append(splitPath(target), pending...)
		resolved = string(filepath.Separator)
	}

	return resolved, nil
}

var errTooManyLinks = errors.New("too many levels of symbolic links")

// splitPath returns the components of a cleaned absolute path.
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(filepath.Clean(path), string(filepath.Separator)) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
