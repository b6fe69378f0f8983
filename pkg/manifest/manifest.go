// Package manifest holds the persisted mapping from local copies in the
// repository to the original locations their symlinks occupy.
//
// The on-disk form is a flat TOML document with one key per entry, the
// value being the portable original location:
//
//	'.bashrc' = '~/.bashrc'
//	hosts = '/etc/hosts'
//
// Keys are always written in sorted order so an unchanged manifest
// serializes to identical bytes.
package manifest

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Entry is one tracked file: its local key and portable original location
type Entry struct {
	LocalKey string
	Original string
}

// Manifest is an in-memory manifest. The zero value is not usable; call Empty.
type Manifest struct {
	entries map[string]string
}

// Empty returns a manifest with no entries
func Empty() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Parse decodes manifest text. Empty input yields an empty manifest.
func Parse(data []byte) (*Manifest, error) {
	m := Empty()
	if len(data) == 0 {
		return m, nil
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse manifest")
	}

	for key, value := range raw {
		s, ok := value.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrManifestParse,
				"manifest entry %q must be a path string, got %T", key, value).
				WithDetail("key", key)
		}
		if key == "" || s == "" {
			return nil, errors.Newf(errors.ErrManifestParse, "manifest entry %q is empty", key).
				WithDetail("key", key)
		}
		m.entries[key] = s
	}
	return m, nil
}

// Serialize encodes the manifest with keys in sorted order
func (m *Manifest) Serialize() ([]byte, error) {
	if len(m.entries) == 0 {
		return []byte{}, nil
	}
	data, err := toml.Marshal(m.entries)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestSerialize, "failed to serialize manifest")
	}
	return data, nil
}

// Contains reports whether key is tracked
func (m *Manifest) Contains(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Portable returns the stored portable original location for key
func (m *Manifest) Portable(key string) (string, bool) {
	p, ok := m.entries[key]
	return p, ok
}

// OriginalLocation returns the absolute original location of key,
// expanding a portable path against r.Home. Relative stored values are
// resolved against r.Cwd.
func (m *Manifest) OriginalLocation(key string, r paths.Resolver) (string, bool, error) {
	p, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	expanded, err := r.FromPortable(p)
	if err != nil {
		return "", true, err
	}
	return r.Absolute(expanded), true, nil
}

// Insert records key with original stored in portable form. An existing
// entry for key is replaced.
func (m *Manifest) Insert(key, original string, r paths.Resolver) error {
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "manifest key cannot be empty")
	}
	portable, err := r.ToPortable(original)
	if err != nil {
		return err
	}
	if err := ValidateEntry(key, portable); err != nil {
		return err
	}
	m.entries[key] = portable
	return nil
}

// ValidateEntry reports whether key and portable can be written to the
// manifest. The file is UTF-8, so both must be valid UTF-8.
func ValidateEntry(key, portable string) error {
	if !utf8.ValidString(key) {
		return errors.Newf(errors.ErrInvalidInput, "file name %q is not valid UTF-8", key).
			WithDetail("key", key)
	}
	if !utf8.ValidString(portable) {
		return errors.Newf(errors.ErrInvalidInput, "path %q is not valid UTF-8", portable).
			WithPath(portable)
	}
	return nil
}

// Remove drops key, reporting whether it was present
func (m *Manifest) Remove(key string) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	return true
}

// Entries returns every entry sorted by key. The slice is a fresh copy.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{LocalKey: k, Original: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalKey < out[j].LocalKey })
	return out
}

// Len returns the number of entries
func (m *Manifest) Len() int {
	return len(m.entries)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.LocalKey, e.Original)
}
