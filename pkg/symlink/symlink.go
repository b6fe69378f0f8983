// Package symlink implements the symlink port on top of a primitive
// filesystem.
package symlink

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/types"
)

// Operations implements types.SymlinkOperations
type Operations struct {
	fs    types.FS
	files types.FileSystem
}

// New returns symlink operations over fsys. files supplies the current
// directory that relative link targets are resolved against.
func New(fsys types.FS, files types.FileSystem) *Operations {
	return &Operations{fs: fsys, files: files}
}

// CreateSymlink creates a link at to pointing at the absolute resolution of from
func (o *Operations) CreateSymlink(from, to string) (types.SymLink, error) {
	logger := logging.GetLogger("symlink")

	target := from
	if !filepath.IsAbs(target) {
		cwd, err := o.files.CurrentDirectory()
		if err != nil {
			return types.SymLink{}, err
		}
		target = filepath.Join(cwd, target)
	}
	target = filepath.Clean(target)

	if err := o.fs.Symlink(target, to); err != nil {
		return types.SymLink{}, errors.Wrapf(err, errors.ErrIO, "failed to link %s to %s", to, target).
			WithPath(to).
			WithDetail("target", target)
	}

	logger.Debug().Str("from", target).Str("to", to).Msg("Created symlink")
	return types.SymLink{From: target, To: to}, nil
}

// IsSymlink reports whether path is currently a symbolic link.
// A path that does not exist is not a symlink and is not an error.
func (o *Operations) IsSymlink(path string) (bool, error) {
	info, err := o.fs.Lstat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIO, "failed to inspect %s", path).WithPath(path)
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

// ReadLink returns the target of the link at path
func (o *Operations) ReadLink(path string) (string, error) {
	target, err := o.fs.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotASymlink, "failed to read link %s", path).WithPath(path)
	}
	return target, nil
}
