package core

import (
	"github.com/arthur-debert/dot/pkg/types"
)

// Status reports the state of every entry without changing anything
func (s *Service) Status() (types.StatusResult, error) {
	result := types.StatusResult{Entries: []types.EntryStatus{}}
	if err := s.requireManifest(); err != nil {
		return result, err
	}

	for _, entry := range s.manifest.Entries() {
		original, _, err := s.manifest.OriginalLocation(entry.LocalKey, s.resolver)
		if err != nil {
			return result, err
		}

		st := types.EntryStatus{
			LocalKey:  entry.LocalKey,
			Portable:  entry.Original,
			Resolved:  original,
			LocalPath: s.localPath(entry.LocalKey),
		}

		switch {
		case s.files.Exists(original):
			isLink, err := s.links.IsSymlink(original)
			if err != nil {
				return result, err
			}
			if !isLink {
				st.State = types.StateConflict
				break
			}
			if target, err := s.links.ReadLink(original); err == nil {
				st.LinkTarget = target
			}
			st.State = types.StateLinked
			if !s.files.Exists(st.LocalPath) {
				st.State = types.StateLocalMissing
			}
		case !s.files.Exists(st.LocalPath):
			st.State = types.StateLocalMissing
		default:
			st.State = types.StateMissingLink
		}

		result.Entries = append(result.Entries, st)
	}
	return result, nil
}
