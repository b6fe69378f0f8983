package core

import (
	"testing"

	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// newService returns an initialized service over a fresh environment
func newService(t *testing.T, envType testutil.EnvType, protected ...string) (*Service, *testutil.TestEnvironment) {
	t.Helper()

	env := testutil.NewTestEnvironment(t, envType)
	svc := New(Options{
		Files:          env.Files,
		Links:          env.Links,
		RepoDir:        env.RepoDir,
		ManifestPath:   env.ManifestPath(),
		Resolver:       env.Resolver,
		Reporter:       env.Reporter,
		ProtectedPaths: protected,
	})
	require.NoError(t, svc.Init())
	env.Reporter.Reset()
	return svc, env
}

// reload reads the manifest back from disk
func reload(t *testing.T, env *testutil.TestEnvironment) *manifest.Manifest {
	t.Helper()

	m, err := manifest.Load(env.Files, env.ManifestPath())
	require.NoError(t, err)
	return m
}
