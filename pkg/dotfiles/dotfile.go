package dotfiles

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/filesystem"
	"github.com/arthur-debert/housekeeper/pkg/paths"
)

// Dotfile is a source entry found by Scan.
type Dotfile struct {
	path string
}

// NewDotfile wraps a source path.
func NewDotfile(path string) Dotfile {
	return Dotfile{path: path}
}

// Path is the source path as it was scanned.
func (d Dotfile) Path() string {
	return d.path
}

// Name is the final path component.
func (d Dotfile) Name() string {
	return filepath.Base(d.path)
}

// Dotname is Name with the leading dot.
func (d Dotfile) Dotname() string {
	return paths.DotName(d.Name())
}

// String implements fmt.Stringer
func (d Dotfile) String() string {
	return d.path
}

// Scan lists the entries of dir that are not directories, in name order.
// It does not recurse. Symlinks are followed to decide whether an entry is a
// directory; dangling symlinks are kept so the installer reports them.
func Scan(fsys filesystem.FS, dir string) ([]Dotfile, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScan, "cannot read dotfiles directory %s", dir).WithPath(dir)
	}

	var dotfiles []Dotfile
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isDir(fsys, path, entry) {
			continue
		}
		dotfiles = append(dotfiles, NewDotfile(path))
	}

	return dotfiles, nil
}

func isDir(fsys filesystem.FS, path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
