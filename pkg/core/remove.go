package core

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/types"
)

// Remove stops tracking an entry: the symlink at the original location is
// deleted and the local copy is moved back into its place. keyOrPath is a
// manifest key, the original location, or the local copy's path.
func (s *Service) Remove(keyOrPath string) (types.RemoveResult, error) {
	logger := logging.GetLogger("core.remove")

	if err := s.requireManifest(); err != nil {
		return types.RemoveResult{}, err
	}

	key, err := s.lookup(keyOrPath)
	if err != nil {
		return types.RemoveResult{}, err
	}
	original, _, err := s.manifest.OriginalLocation(key, s.resolver)
	if err != nil {
		return types.RemoveResult{}, err
	}

	local := s.localPath(key)
	if !s.files.Exists(local) {
		return types.RemoveResult{}, errors.Newf(errors.ErrNotFound, "local copy %s is missing", local).
			WithPath(local)
	}
	if !s.files.Exists(original) {
		return types.RemoveResult{}, errors.Newf(errors.ErrNotFound, "%s does not exist", original).
			WithPath(original)
	}
	isLink, err := s.links.IsSymlink(original)
	if err != nil {
		return types.RemoveResult{}, err
	}
	if !isLink {
		return types.RemoveResult{}, errors.Newf(errors.ErrNotASymlink,
			"%s is not a symlink, refusing to replace it", original).
			WithPath(original)
	}

	if err := s.files.Remove(original); err != nil {
		return types.RemoveResult{}, err
	}
	logger.Debug().Str("path", original).Msg("Removed symlink")

	if err := s.files.Rename(local, original); err != nil {
		return types.RemoveResult{}, err
	}
	logger.Debug().Str("from", local).Str("to", original).Msg("Restored file")

	s.manifest.Remove(key)
	if err := s.persist(); err != nil {
		return types.RemoveResult{}, err
	}

	logger.Info().Str("key", key).Str("restored", original).Msg("Stopped tracking file")
	s.report(types.OutcomeSuccess, "remove", "Restored "+key, original)
	return types.RemoveResult{LocalKey: key, Restored: original}, nil
}

// RemoveAll removes each argument in order and stops at the first failure
func (s *Service) RemoveAll(args []string) ([]types.RemoveResult, error) {
	results := make([]types.RemoveResult, 0, len(args))
	for _, a := range args {
		r, err := s.Remove(a)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// lookup finds the manifest key for arg. A name that is not a key itself
// only matches when arg is the entry's original location or local copy.
func (s *Service) lookup(arg string) (string, error) {
	if s.manifest.Contains(arg) {
		return arg, nil
	}

	notFound := errors.Newf(errors.ErrNotFound, "%s is not tracked", arg).WithPath(arg)

	key, ok := paths.LocalKey(arg)
	if !ok || !s.manifest.Contains(key) {
		return "", notFound
	}

	abs := s.resolver.Absolute(arg)
	if abs == s.localPath(key) {
		return key, nil
	}
	original, _, err := s.manifest.OriginalLocation(key, s.resolver)
	if err != nil {
		return "", err
	}
	if original != abs {
		return "", notFound
	}
	return key, nil
}
