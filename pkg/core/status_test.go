package core

import (
	"testing"

	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/arthur-debert/dot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	freshClone(t, env)
	svc := loadedService(t, env)

	env.Symlink(env.Repo(".bashrc"), env.Home(".bashrc"))
	env.WriteFile("/etc/hosts", "system copy")
	require.NoError(t, env.FS.Remove(env.Repo("init.lua")))
	before := env.Memory.Snapshot()

	res, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, res.Entries, 3)

	assert.Equal(t, types.EntryStatus{
		LocalKey:   ".bashrc",
		Portable:   "~/.bashrc",
		Resolved:   env.Home(".bashrc"),
		LocalPath:  env.Repo(".bashrc"),
		State:      types.StateLinked,
		LinkTarget: env.Repo(".bashrc"),
	}, res.Entries[0])
	assert.Equal(t, types.StateConflict, res.Entries[1].State)
	assert.Equal(t, types.StateLocalMissing, res.Entries[2].State)

	assert.False(t, res.UpToDate())
	assert.Equal(t, before, env.Memory.Snapshot())
}

func TestStatus_MissingLink(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	freshClone(t, env)
	svc := loadedService(t, env)

	res, err := svc.Status()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count(types.StateMissingLink))
	assert.True(t, res.UpToDate())
}
