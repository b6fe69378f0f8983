package symlink_test

import (
	"errors"
	"testing"

	doterrors "github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSymlink(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		env := testutil.NewTestEnvironment(t, envType)
		local := env.WriteFile(env.Repo(".bashrc"), "alias ll=ls")

		link, err := env.Links.CreateSymlink(local, env.Home(".bashrc"))
		require.NoError(t, err)
		assert.Equal(t, local, link.From)
		assert.Equal(t, env.Home(".bashrc"), link.To)
		testutil.AssertSymlink(t, env.FS, env.Home(".bashrc"), local)

		isLink, err := env.Links.IsSymlink(env.Home(".bashrc"))
		require.NoError(t, err)
		assert.True(t, isLink)
	}
}

func TestCreateSymlink_RelativeSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(env.Repo("vimrc"), "set nu")

	link, err := env.Links.CreateSymlink("vimrc", env.Home(".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, env.Repo("vimrc"), link.From)
	testutil.AssertSymlink(t, env.FS, env.Home(".vimrc"), env.Repo("vimrc"))
}

func TestCreateSymlink_Occupied(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(env.Home(".vimrc"), "mine")

	_, err := env.Links.CreateSymlink(env.Repo("vimrc"), env.Home(".vimrc"))
	require.Error(t, err)
	assert.True(t, doterrors.IsErrorCode(err, doterrors.ErrIO))
	assert.Equal(t, env.Home(".vimrc"), doterrors.PathOf(err))
	testutil.AssertRegularFile(t, env.FS, env.Home(".vimrc"), "mine")
}

func TestIsSymlink(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(env.Home("plain"), "x")
	env.Symlink(env.Repo("gone"), env.Home("dangling"))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"plain file", env.Home("plain"), false},
		{"missing", env.Home("missing"), false},
		{"dangling link", env.Home("dangling"), true},
		{"directory", env.HomeDir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.Links.IsSymlink(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSymlink_IOError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Memory.WithError(env.Home("bad"), errors.New("permission denied"))

	_, err := env.Links.IsSymlink(env.Home("bad"))
	require.Error(t, err)
	assert.True(t, doterrors.IsErrorCode(err, doterrors.ErrIO))
}

func TestReadLink(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Symlink(env.Repo("a"), env.Home("a"))
	env.WriteFile(env.Home("b"), "x")

	target, err := env.Links.ReadLink(env.Home("a"))
	require.NoError(t, err)
	assert.Equal(t, env.Repo("a"), target)

	_, err = env.Links.ReadLink(env.Home("b"))
	assert.True(t, doterrors.IsErrorCode(err, doterrors.ErrNotASymlink))
}
