package filesystem

import (
	"errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/dot/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs  afero.Fs
	cwd string
}

// NewAferoFS creates a new afero filesystem implementation.
// The working directory is "/" unless the backend is the real OS filesystem.
func NewAferoFS(fsys afero.Fs) types.FS {
	cwd := "/"
	if _, ok := fsys.(*afero.OsFs); ok {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}
	return NewAferoFSAt(fsys, cwd)
}

// NewAferoFSAt is NewAferoFS with an explicit working directory
func NewAferoFSAt(fsys afero.Fs, cwd string) types.FS {
	return &aferoFS{fs: fsys, cwd: cwd}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// Backends without Lstater cannot hold symlinks, so Stat is exact
	if l, ok := a.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if l, ok := a.fs.(afero.Linker); ok {
		return l.SymlinkIfPossible(oldname, newname)
	}
	return &fs.PathError{Op: "symlink", Path: newname, Err: errors.ErrUnsupported}
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if r, ok := a.fs.(afero.LinkReader); ok {
		return r.ReadlinkIfPossible(name)
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.ErrUnsupported}
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Getwd() (string, error) {
	return a.cwd, nil
}
