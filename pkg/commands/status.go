package commands

import (
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/types"
)

// Status reports the state of every tracked file without changing anything
func Status(opts Options) (types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	s, err := open(opts, false, true)
	if err != nil {
		return types.StatusResult{}, err
	}
	defer s.close()

	result, err := s.service.Status()
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("entries", len(result.Entries)).
		Bool("upToDate", result.UpToDate()).
		Msg("Status computed")
	return result, nil
}
