package core

import (
	"fmt"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/types"
)

// Sync makes every original location a symlink to its local copy. Missing
// links are created along with their parent directories; existing links are
// left alone. A non-symlink in the way is reported as a conflict and
// skipped. A missing local copy aborts the pass.
func (s *Service) Sync() (types.SyncResult, error) {
	logger := logging.GetLogger("core.sync")
	done := logging.LogOperationStart(logger, "sync")
	defer done()

	result := types.SyncResult{
		Created:   []types.SymLink{},
		Unchanged: []string{},
		Conflicts: []string{},
	}
	if err := s.requireManifest(); err != nil {
		return result, err
	}

	for _, entry := range s.manifest.Entries() {
		local := s.localPath(entry.LocalKey)
		if !s.files.Exists(local) {
			return result, errors.Newf(errors.ErrNotFound, "local copy %s is missing", local).
				WithPath(local).
				WithDetail("key", entry.LocalKey)
		}

		original, _, err := s.manifest.OriginalLocation(entry.LocalKey, s.resolver)
		if err != nil {
			return result, err
		}

		if !s.files.Exists(original) {
			if err := s.files.EnsureParentDirectories(original); err != nil {
				return result, err
			}
			link, err := s.links.CreateSymlink(local, original)
			if err != nil {
				return result, err
			}
			result.Created = append(result.Created, link)
			logger.Info().Str("key", entry.LocalKey).Str("link", original).Msg("Created link")
			s.report(types.OutcomeSuccess, "sync", "Linked "+entry.LocalKey, original)
			continue
		}

		isLink, err := s.links.IsSymlink(original)
		if err != nil {
			return result, err
		}
		if isLink {
			result.Unchanged = append(result.Unchanged, entry.LocalKey)
			logger.Debug().Str("key", entry.LocalKey).Msg("Already linked")
			continue
		}

		result.Conflicts = append(result.Conflicts, original)
		logger.Warn().Str("key", entry.LocalKey).Str("path", original).Msg("Conflict: file is not a symlink")
		s.report(types.OutcomeConflict, "sync",
			fmt.Sprintf("Found file %s. Please remove it to sync tracked version", original), original)
	}

	return result, nil
}

// IsUpToDate reports whether no entry is blocked by a conflict. Missing
// links do not count; creating them is what Sync is for.
func (s *Service) IsUpToDate() (bool, error) {
	if err := s.requireManifest(); err != nil {
		return false, err
	}

	for _, entry := range s.manifest.Entries() {
		original, _, err := s.manifest.OriginalLocation(entry.LocalKey, s.resolver)
		if err != nil {
			return false, err
		}
		if !s.files.Exists(original) {
			continue
		}
		isLink, err := s.links.IsSymlink(original)
		if err != nil {
			return false, err
		}
		if !isLink {
			return false, nil
		}
	}
	return true, nil
}
