package filesystem

import (
	"io/fs"
)

// FS is the set of filesystem operations housekeeper needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Remove(name string) error

	// Canonicalize returns the absolute, symlink free location of an existing path.
	Canonicalize(path string) (string, error)
}
