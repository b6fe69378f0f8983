package paths

import (
	"testing"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverAbsolute(t *testing.T) {
	r := Resolver{Home: "/home/u", Cwd: "/work/repo"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute unchanged", "/a/b", "/a/b"},
		{"parent collapses", "/a/b/../c", "/a/c"},
		{"current dropped", "/a/./b", "/a/b"},
		{"parent at root is a no-op", "/../../a", "/a"},
		{"relative joins cwd", "dotfile", "/work/repo/dotfile"},
		{"relative with parent", "../other/.vimrc", "/work/other/.vimrc"},
		{"dot is cwd", ".", "/work/repo"},
		{"trailing slash dropped", "/a/b/", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Absolute(tt.path))
		})
	}
}

func TestResolverAbsolute_EmptyCwd(t *testing.T) {
	r := Resolver{}
	assert.Equal(t, "/x", r.Absolute("x"))
}

func TestToPortable(t *testing.T) {
	r := Resolver{Home: "/home/u", Cwd: "/home/u/src"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"file under home", "/home/u/.vimrc", "~/.vimrc"},
		{"nested under home", "/home/u/.config/nvim/init.lua", "~/.config/nvim/init.lua"},
		{"home itself", "/home/u", "~"},
		{"relative under home", "../.bashrc", "~/.bashrc"},
		{"outside home", "/etc/hosts", "/etc/hosts"},
		{"sibling with shared prefix", "/home/user2/.vimrc", "/home/user2/.vimrc"},
		{"lexical escape from home", "/home/u/../v/.vimrc", "/home/v/.vimrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ToPortable(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPortable(t *testing.T) {
	r := Resolver{Home: "/home/u2", Cwd: "/"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde file", "~/.vimrc", "/home/u2/.vimrc"},
		{"bare tilde", "~", "/home/u2"},
		{"absolute unchanged", "/etc/hosts", "/etc/hosts"},
		{"other user unchanged", "~bob/.vimrc", "~bob/.vimrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.FromPortable(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortableAcrossHomes(t *testing.T) {
	first := Resolver{Home: "/home/alice", Cwd: "/"}
	second := Resolver{Home: "/Users/alice", Cwd: "/"}

	portable, err := first.ToPortable("/home/alice/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "~/.vimrc", portable)

	resolved, err := second.FromPortable(portable)
	require.NoError(t, err)
	assert.Equal(t, "/Users/alice/.vimrc", resolved)
}

func TestConversionsWithoutHome(t *testing.T) {
	r := Resolver{Cwd: "/tmp"}

	_, err := r.ToPortable("/tmp/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoHomeDirectory))

	_, err = r.FromPortable("~/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoHomeDirectory))
}

func TestGetHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "/tmp/test-home")

	home, err := GetHomeDirectory()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestLocalKey(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/home/u/.bashrc", ".bashrc", true},
		{"/home/u/.config/nvim/", "nvim", true},
		{"relative/vimrc", "vimrc", true},
		{"vimrc", "vimrc", true},
		{"/", "", false},
		{".", "", false},
		{"..", "", false},
		{"", "", false},
		{"a/..", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := LocalKey(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsPath(t *testing.T) {
	assert.True(t, ContainsPath("/etc", "/etc"))
	assert.True(t, ContainsPath("/etc", "/etc/ssh/sshd_config"))
	assert.True(t, ContainsPath("/home/u/.ssh/", "/home/u/.ssh/id_rsa"))
	assert.False(t, ContainsPath("/etc", "/etcetera"))
	assert.False(t, ContainsPath("/home/u/.ssh", "/home/u"))
}
