package manifest

import (
	"strings"
	"testing"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var home = paths.Resolver{Home: "/home/u", Cwd: "/home/u/repo"}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  []Entry{},
		},
		{
			name:  "quoted keys",
			input: "\".bashrc\" = \"~/.bashrc\"\nhosts = \"/etc/hosts\"\n",
			want: []Entry{
				{LocalKey: ".bashrc", Original: "~/.bashrc"},
				{LocalKey: "hosts", Original: "/etc/hosts"},
			},
		},
		{
			name:  "literal strings",
			input: "'.vimrc' = '~/.vimrc'\n",
			want:  []Entry{{LocalKey: ".vimrc", Original: "~/.vimrc"}},
		},
		{
			name:    "malformed",
			input:   "this is not toml",
			wantErr: true,
		},
		{
			name:    "non-string value",
			input:   "vimrc = 42\n",
			wantErr: true,
		},
		{
			name:    "nested table",
			input:   "[section]\nvimrc = \"~/.vimrc\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, m.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerializeSortedAndDeterministic(t *testing.T) {
	m := Empty()
	require.NoError(t, m.Insert("zshrc", "/home/u/.zshrc", home))
	require.NoError(t, m.Insert(".bashrc", "/home/u/.bashrc", home))
	require.NoError(t, m.Insert("hosts", "/etc/hosts", home))

	first, err := m.Serialize()
	require.NoError(t, err)
	second, err := m.Serialize()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	text := string(first)
	assert.Less(t, strings.Index(text, ".bashrc"), strings.Index(text, "hosts"))
	assert.Less(t, strings.Index(text, "hosts"), strings.Index(text, "zshrc"))
	assert.Equal(t, 3, strings.Count(text, "\n"))
}

func TestSerializeEmpty(t *testing.T) {
	data, err := Empty().Serialize()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRoundTrip(t *testing.T) {
	m := Empty()
	require.NoError(t, m.Insert(".bashrc", "/home/u/.bashrc", home))
	require.NoError(t, m.Insert("nvim", "/home/u/.config/nvim", home))
	require.NoError(t, m.Insert("hosts", "/etc/hosts", home))
	require.NoError(t, m.Insert("it's", "/home/u/it's", home))
	require.NoError(t, m.Insert(`quote"d`, "/tmp/quote\"d", home))
	assert.True(t, m.Remove("nvim"))

	data, err := m.Serialize()
	require.NoError(t, err)

	loaded, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(m.Entries(), loaded.Entries()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := loaded.Serialize()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestInsertStoresPortable(t *testing.T) {
	m := Empty()
	require.NoError(t, m.Insert(".vimrc", "/home/u/.vimrc", home))

	p, ok := m.Portable(".vimrc")
	require.True(t, ok)
	assert.Equal(t, "~/.vimrc", p)

	other := paths.Resolver{Home: "/home/u2", Cwd: "/"}
	resolved, ok, err := m.OriginalLocation(".vimrc", other)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/home/u2/.vimrc", resolved)
}

func TestInsertRelativeOriginal(t *testing.T) {
	m := Empty()
	require.NoError(t, m.Insert("gitconfig", "../.gitconfig", home))

	p, _ := m.Portable("gitconfig")
	assert.Equal(t, "~/.gitconfig", p)
}

func TestInsertWithoutHome(t *testing.T) {
	m := Empty()
	err := m.Insert("x", "/tmp/x", paths.Resolver{Cwd: "/"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoHomeDirectory))
	assert.Equal(t, 0, m.Len())
}

func TestOriginalLocation(t *testing.T) {
	m, err := Parse([]byte("a = \"~/a\"\nb = \"/abs/b\"\nc = \"rel/c\"\n"))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"a", "/home/u/a"},
		{"b", "/abs/b"},
		{"c", "/home/u/repo/rel/c"},
	}
	for _, tt := range tests {
		got, ok, err := m.OriginalLocation(tt.key, home)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok, err := m.OriginalLocation("missing", home)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsRemoveLen(t *testing.T) {
	m := Empty()
	assert.False(t, m.Contains("vimrc"))
	assert.False(t, m.Remove("vimrc"))

	require.NoError(t, m.Insert("vimrc", "/home/u/.vimrc", home))
	assert.True(t, m.Contains("vimrc"))
	assert.Equal(t, 1, m.Len())

	assert.True(t, m.Remove("vimrc"))
	assert.False(t, m.Contains("vimrc"))
	assert.Equal(t, 0, m.Len())
}

func TestEntriesRestartable(t *testing.T) {
	m := Empty()
	require.NoError(t, m.Insert("b", "/home/u/b", home))
	require.NoError(t, m.Insert("a", "/home/u/a", home))

	first := m.Entries()
	first[0].LocalKey = "mutated"
	second := m.Entries()

	assert.Equal(t, []Entry{{"a", "~/a"}, {"b", "~/b"}}, second)
}

func TestInsertRejectsInvalidUTF8(t *testing.T) {
	m := Empty()

	err := m.Insert("bad\xffname", "/home/u/bad\xffname", home)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = m.Insert("ok", "/srv/bad\xffdir/ok", home)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, 0, m.Len())

	// multi-byte names are fine
	require.NoError(t, m.Insert("café", "/home/u/café", home))
	data, err := m.Serialize()
	require.NoError(t, err)
	loaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), loaded.Entries())
}
