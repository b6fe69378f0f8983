package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/dot/pkg/types"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// billyFS implements types.FS on top of a go-billy filesystem.
// Paths are interpreted relative to the billy root, which is also the
// working directory.
type billyFS struct {
	fs billy.Filesystem
}

// NewBillyFS creates a types.FS backed by fsys
func NewBillyFS(fsys billy.Filesystem) types.FS {
	return &billyFS{fs: fsys}
}

func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	return b.fs.Stat(name)
}

func (b *billyFS) Lstat(name string) (fs.FileInfo, error) {
	return b.fs.Lstat(name)
}

func (b *billyFS) ReadFile(name string) ([]byte, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return util.ReadFile(b.fs, name)
}

func (b *billyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(b.fs, name, data, perm)
}

func (b *billyFS) MkdirAll(path string, perm fs.FileMode) error {
	return b.fs.MkdirAll(path, perm)
}

func (b *billyFS) Symlink(oldname, newname string) error {
	return b.fs.Symlink(oldname, newname)
}

func (b *billyFS) Readlink(name string) (string, error) {
	return b.fs.Readlink(name)
}

func (b *billyFS) Remove(name string) error {
	return b.fs.Remove(name)
}

func (b *billyFS) RemoveAll(path string) error {
	return util.RemoveAll(b.fs, path)
}

func (b *billyFS) Rename(oldpath, newpath string) error {
	return b.fs.Rename(oldpath, newpath)
}

func (b *billyFS) Getwd() (string, error) {
	return b.fs.Root(), nil
}
