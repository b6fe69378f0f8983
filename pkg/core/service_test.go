package core

import (
	"testing"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/arthur-debert/dot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	svc := New(Options{
		Files:    env.Files,
		Links:    env.Links,
		RepoDir:  env.RepoDir,
		Resolver: env.Resolver,
		Reporter: env.Reporter,
	})

	require.NoError(t, svc.Init())
	testutil.AssertRegularFile(t, env.FS, env.ManifestPath(), "")
	assert.Equal(t, 0, reload(t, env).Len())
	assert.Len(t, env.Reporter.OfKind(types.OutcomeSuccess), 1)

	err := svc.Init()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, env.ManifestPath(), errors.PathOf(err))
}

func TestInit_ExistingManifestUntouched(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(env.ManifestPath(), "a = \"~/a\"\n")
	svc := New(Options{Files: env.Files, Links: env.Links, RepoDir: env.RepoDir, Resolver: env.Resolver})

	err := svc.Init()
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "a = \"~/a\"\n", env.ReadFile(env.ManifestPath()))
}

func TestOperationsRequireManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	svc := New(Options{Files: env.Files, Links: env.Links, RepoDir: env.RepoDir, Resolver: env.Resolver})

	_, err := svc.Add(env.Home(".vimrc"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = svc.Remove(".vimrc")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = svc.Sync()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = svc.IsUpToDate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	_, err = svc.Status()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestEndToEnd(t *testing.T) {
	for name, envType := range map[string]testutil.EnvType{
		"memory":   testutil.EnvMemoryOnly,
		"isolated": testutil.EnvIsolated,
	} {
		t.Run(name, func(t *testing.T) {
			svc, env := newService(t, envType)
			bashrc := env.WriteFile(env.Home(".bashrc"), "alias ll=ls")

			res, err := svc.Add(bashrc)
			require.NoError(t, err)
			assert.Equal(t, ".bashrc", res.LocalKey)
			assert.Equal(t, "~/.bashrc", res.Portable)

			testutil.AssertRegularFile(t, env.FS, env.Repo(".bashrc"), "alias ll=ls")
			testutil.AssertSymlink(t, env.FS, bashrc, env.Repo(".bashrc"))
			p, ok := reload(t, env).Portable(".bashrc")
			require.True(t, ok)
			assert.Equal(t, "~/.bashrc", p)

			sync, err := svc.Sync()
			require.NoError(t, err)
			assert.Empty(t, sync.Created)
			assert.Empty(t, sync.Conflicts)
			assert.Equal(t, []string{".bashrc"}, sync.Unchanged)

			upToDate, err := svc.IsUpToDate()
			require.NoError(t, err)
			assert.True(t, upToDate)

			removed, err := svc.Remove(".bashrc")
			require.NoError(t, err)
			assert.Equal(t, bashrc, removed.Restored)

			testutil.AssertRegularFile(t, env.FS, bashrc, "alias ll=ls")
			testutil.AssertNotExists(t, env.FS, env.Repo(".bashrc"))
			assert.False(t, reload(t, env).Contains(".bashrc"))
		})
	}
}

func TestNewDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	svc := New(Options{Files: env.Files, Links: env.Links, RepoDir: env.RepoDir, Resolver: env.Resolver, Manifest: manifest.Empty()})

	assert.Equal(t, env.ManifestPath(), svc.manPath)
	assert.NotNil(t, svc.reporter)
	assert.Equal(t, 0, svc.Manifest().Len())
}
