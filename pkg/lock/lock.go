// Package lock provides the advisory repository lock taken by mutating
// commands. Two dot processes working on one repository would otherwise
// race on the full manifest rewrite.
package lock

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/gofrs/flock"
)

// Lock is a held repository lock
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock at path without waiting. A lock held by another
// process fails with ErrLocked.
func Acquire(path string) (*Lock, error) {
	logger := logging.GetLogger("lock")

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to lock %s", path).WithPath(path)
	}
	if !locked {
		return nil, errors.Newf(errors.ErrLocked, "repository is locked by another dot process (%s)", path).
			WithPath(path)
	}

	logger.Debug().Str("path", path).Msg("Acquired repository lock")
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Calling it on a nil Lock is a no-op.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to unlock %s", l.fl.Path()).WithPath(l.fl.Path())
	}
	return nil
}

// Path returns the lock file path
func (l *Lock) Path() string {
	return l.fl.Path()
}
