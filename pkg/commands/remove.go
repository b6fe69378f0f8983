package commands

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

// RemoveOptions contains options for the remove command
type RemoveOptions struct {
	Options

	// Targets are local keys or original paths of tracked files
	Targets []string
}

// Remove stops tracking each target and moves its file back. It stops at
// the first failure.
func Remove(opts RemoveOptions) ([]types.RemoveResult, error) {
	if len(opts.Targets) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no files given")
	}

	s, err := open(opts.Options, true, true)
	if err != nil {
		return nil, err
	}
	defer s.close()

	return s.service.RemoveAll(opts.Targets)
}
