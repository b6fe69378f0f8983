package commands

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

// AddOptions contains options for the add command
type AddOptions struct {
	Options

	// Paths are the files to track, in order
	Paths []string
}

// Add tracks each path. It stops at the first failure; earlier paths stay
// tracked.
func Add(opts AddOptions) ([]types.AddResult, error) {
	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no paths given")
	}

	s, err := open(opts.Options, true, true)
	if err != nil {
		return nil, err
	}
	defer s.close()

	return s.service.AddAll(opts.Paths)
}
