package commands

import (
	"fmt"

	"github.com/arthur-debert/dot/pkg/types"
)

// Sync links every tracked file that is not linked yet and reports a
// summary of the pass
func Sync(opts Options) (types.SyncResult, error) {
	s, err := open(opts, true, true)
	if err != nil {
		return types.SyncResult{}, err
	}
	defer s.close()

	result, err := s.service.Sync()
	if err != nil {
		return result, err
	}

	if opts.Reporter != nil {
		opts.Reporter.Report(types.Outcome{
			Kind: types.OutcomeInfo,
			Op:   "sync",
			Message: fmt.Sprintf("%d linked, %d already linked, %d conflicts",
				len(result.Created), len(result.Unchanged), len(result.Conflicts)),
		})
	}
	return result, nil
}
