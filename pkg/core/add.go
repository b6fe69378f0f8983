package core

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/types"
)

// Add moves the file or directory at path into the repository, links the
// original location to the moved copy and records the entry.
func (s *Service) Add(path string) (types.AddResult, error) {
	logger := logging.GetLogger("core.add")

	if err := s.requireManifest(); err != nil {
		return types.AddResult{}, err
	}

	key, ok := paths.LocalKey(path)
	if !ok {
		return types.AddResult{}, errors.Newf(errors.ErrNotFound, "cannot determine a file name for %q", path).
			WithPath(path)
	}
	if s.manifest.Contains(key) {
		return types.AddResult{}, errors.Newf(errors.ErrAlreadyTracked, "%s is already tracked", key).
			WithPath(path).
			WithDetail("key", key)
	}

	original := s.resolver.Absolute(path)
	if err := s.checkAddable(original); err != nil {
		return types.AddResult{}, err
	}
	// portable form must resolve before the first mutation
	portable, err := s.resolver.ToPortable(original)
	if err != nil {
		return types.AddResult{}, err
	}
	if err := manifest.ValidateEntry(key, portable); err != nil {
		return types.AddResult{}, err
	}

	local := s.localPath(key)
	if s.files.Exists(local) {
		return types.AddResult{}, errors.Newf(errors.ErrAlreadyExists, "repository already contains %s", local).
			WithPath(local)
	}

	if err := s.files.Rename(original, local); err != nil {
		return types.AddResult{}, err
	}
	logger.Debug().Str("from", original).Str("to", local).Msg("Moved file into repository")

	link, err := s.links.CreateSymlink(local, original)
	if err != nil {
		return types.AddResult{}, err
	}

	if err := s.manifest.Insert(key, original, s.resolver); err != nil {
		return types.AddResult{}, err
	}
	if err := s.persist(); err != nil {
		return types.AddResult{}, err
	}

	logger.Info().Str("key", key).Str("original", portable).Msg("Tracking file")
	s.report(types.OutcomeSuccess, "add", "Tracking "+key, original)
	return types.AddResult{LocalKey: key, Portable: portable, Link: link}, nil
}

// AddAll adds each path in order and stops at the first failure. The
// manifest has been persisted after every successful add.
func (s *Service) AddAll(pathList []string) ([]types.AddResult, error) {
	results := make([]types.AddResult, 0, len(pathList))
	for _, p := range pathList {
		r, err := s.Add(p)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (s *Service) checkAddable(original string) error {
	if paths.ContainsPath(s.repoDir, original) {
		return errors.Newf(errors.ErrInvalidInput, "%s is inside the repository", original).
			WithPath(original)
	}

	for _, p := range s.protected {
		expanded, err := s.resolver.FromPortable(p)
		if err != nil {
			return err
		}
		if paths.ContainsPath(s.resolver.Absolute(expanded), original) {
			return errors.Newf(errors.ErrProtectedPath, "%s is protected and cannot be tracked", original).
				WithPath(original).
				WithDetail("protected", p)
		}
	}

	if !s.files.Exists(original) {
		return errors.Newf(errors.ErrNotFound, "%s does not exist", original).WithPath(original)
	}
	return nil
}
