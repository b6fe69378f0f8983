package manifest

import (
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

// Load reads and parses the manifest at path. A missing file means the
// repository was never initialized and is reported as ErrNotFound.
func Load(files types.FileSystem, path string) (*Manifest, error) {
	if !files.Exists(path) {
		return nil, errors.Newf(errors.ErrNotFound, "no manifest at %s, run 'dot init' first", path).
			WithPath(path)
	}

	data, err := files.Read(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		if dotErr, ok := err.(*errors.DotError); ok {
			return nil, dotErr.WithPath(path)
		}
		return nil, err
	}
	return m, nil
}

// Save rewrites the whole manifest file at path
func (m *Manifest) Save(files types.FileSystem, path string) error {
	data, err := m.Serialize()
	if err != nil {
		return err
	}
	return files.Write(path, data)
}
