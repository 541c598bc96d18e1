package testutil

import (
	"io/fs"

	"github.com/arthur-debert/housekeeper/pkg/filesystem"
)

// Op names a filesystem.FS method for fault injection.
type Op string

const (
	OpStat         Op = "stat"
	OpLstat        Op = "lstat"
	OpReadDir      Op = "readdir"
	OpMkdirAll     Op = "mkdirall"
	OpSymlink      Op = "symlink"
	OpReadlink     Op = "readlink"
	OpRemove       Op = "remove"
	OpCanonicalize Op = "canonicalize"
)

type fault struct {
	op   Op
	path string
}

// FaultyFS wraps a filesystem.FS and returns injected errors for chosen
// (operation, path) pairs. Every call is recorded in Calls.
type FaultyFS struct {
	filesystem.FS

	faults map[fault]error
	Calls  []string
}

// NewFaultyFS wraps base.
func NewFaultyFS(base filesystem.FS) *FaultyFS {
	return &FaultyFS{FS: base, faults: make(map[fault]error)}
}

// Fail makes op on path return err.
func (f *FaultyFS) Fail(op Op, path string, err error) *FaultyFS {
	f.faults[fault{op: op, path: path}] = err
	return f
}

func (f *FaultyFS) check(op Op, path string) error {
	f.Calls = append(f.Calls, string(op)+" "+path)
	return f.faults[fault{op: op, path: path}]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Canonicalize(path string) (string, error) {
	if err := f.check(OpCanonicalize, path); err != nil {
		return "", err
	}
	return f.FS.Canonicalize(path)
}

var _ filesystem.FS = (*FaultyFS)(nil)
