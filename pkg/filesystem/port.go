package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

const (
	filePerm = 0644
	dirPerm  = 0755
)

// port adapts a primitive types.FS to the types.FileSystem port
type port struct {
	fs types.FS
}

// NewPort wraps fsys in the FileSystem port used by the engine
func NewPort(fsys types.FS) types.FileSystem {
	return &port{fs: fsys}
}

func (p *port) Exists(path string) bool {
	_, err := p.fs.Lstat(path)
	return err == nil
}

func (p *port) Read(path string) ([]byte, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).WithPath(path)
	}
	return data, nil
}

func (p *port) Write(path string, data []byte) error {
	if err := p.fs.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).WithPath(path)
	}
	return nil
}

func (p *port) Remove(path string) error {
	info, err := p.fs.Lstat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove %s", path).WithPath(path)
	}

	if info.IsDir() {
		err = p.fs.RemoveAll(path)
	} else {
		err = p.fs.Remove(path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove %s", path).WithPath(path)
	}
	return nil
}

func (p *port) Rename(from, to string) error {
	if err := p.fs.Rename(from, to); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to move %s to %s", from, to).
			WithPath(from).
			WithDetail("target", to)
	}
	return nil
}

func (p *port) EnsureParentDirectories(path string) error {
	dir := filepath.Dir(path)
	if err := p.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", dir).WithPath(dir)
	}
	return nil
}

func (p *port) CurrentDirectory() (string, error) {
	wd, err := p.fs.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "failed to get current directory")
	}
	return wd, nil
}
