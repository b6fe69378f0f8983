package testutil

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_BasicOperations(t *testing.T) {
	m := NewMemoryFS()

	t.Run("WriteAndRead", func(t *testing.T) {
		require.NoError(t, m.WriteFile("/test.txt", []byte("test content"), 0644))

		data, err := m.ReadFile("/test.txt")
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("WriteCreatesParents", func(t *testing.T) {
		require.NoError(t, m.WriteFile("/a/b/c.txt", []byte("x"), 0644))

		info, err := m.Stat("/a/b")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("ReadDirectory", func(t *testing.T) {
		_, err := m.ReadFile("/a")
		assert.Error(t, err)
	})

	t.Run("RemoveNonEmpty", func(t *testing.T) {
		assert.Error(t, m.Remove("/a"))
		require.NoError(t, m.RemoveAll("/a"))
		_, err := m.Stat("/a/b/c.txt")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("RelativePaths", func(t *testing.T) {
		require.NoError(t, m.MkdirAll("/work", 0755))
		require.NoError(t, m.Chdir("/work"))
		require.NoError(t, m.WriteFile("rel.txt", []byte("r"), 0644))

		data, err := m.ReadFile("/work/rel.txt")
		require.NoError(t, err)
		assert.Equal(t, "r", string(data))
	})
}

func TestMemoryFS_Symlinks(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/repo/.vimrc", []byte("set nu"), 0644))
	require.NoError(t, m.MkdirAll("/home", 0755))
	require.NoError(t, m.Symlink("/repo/.vimrc", "/home/.vimrc"))

	linfo, err := m.Lstat("/home/.vimrc")
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	info, err := m.Stat("/home/.vimrc")
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	data, err := m.ReadFile("/home/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "set nu", string(data))

	target, err := m.Readlink("/home/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.vimrc", target)

	assert.ErrorIs(t, m.Symlink("/x", "/home/.vimrc"), fs.ErrExist)

	_, err = m.Readlink("/repo/.vimrc")
	assert.Error(t, err)

	require.NoError(t, m.Remove("/home/.vimrc"))
	_, err = m.ReadFile("/repo/.vimrc")
	assert.NoError(t, err, "removing a link keeps its target")
}

func TestMemoryFS_DanglingSymlink(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.Symlink("/nowhere", "/link"))

	_, err := m.Lstat("/link")
	assert.NoError(t, err)

	_, err = m.Stat("/link")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFS_SymlinkNeedsParent(t *testing.T) {
	m := NewMemoryFS()
	err := m.Symlink("/target", "/missing/dir/link")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFS_LinkedDirectory(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/repo/nvim/init.lua", []byte("--"), 0644))
	require.NoError(t, m.Symlink("/repo/nvim", "/nvim"))

	data, err := m.ReadFile("/nvim/init.lua")
	require.NoError(t, err)
	assert.Equal(t, "--", string(data))

	info, err := m.Lstat("/nvim")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMemoryFS_Rename(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/home/nvim/init.lua", []byte("a"), 0644))
	require.NoError(t, m.WriteFile("/home/nvim/lua/p.lua", []byte("b"), 0644))
	require.NoError(t, m.MkdirAll("/repo", 0755))

	require.NoError(t, m.Rename("/home/nvim", "/repo/nvim"))

	_, err := m.Lstat("/home/nvim")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	data, err := m.ReadFile("/repo/nvim/lua/p.lua")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	assert.ErrorIs(t, m.Rename("/home/nvim", "/repo/x"), fs.ErrNotExist)
	assert.Error(t, m.Rename("/repo/nvim", "/repo/nvim/lua/inner"))
	assert.ErrorIs(t, m.Rename("/repo/nvim", "/absent/nvim"), fs.ErrNotExist)
}

func TestMemoryFS_RenameReplacesFile(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/a", []byte("new"), 0644))
	require.NoError(t, m.WriteFile("/b", []byte("old"), 0644))

	require.NoError(t, m.Rename("/a", "/b"))

	data, err := m.ReadFile("/b")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	m := NewMemoryFS()
	boom := errors.New("disk on fire")
	m.WithError("/broken", boom)

	assert.ErrorIs(t, m.WriteFile("/broken", []byte("x"), 0644), boom)
	_, err := m.Lstat("/broken")
	assert.ErrorIs(t, err, boom)

	m.ClearErrors()
	assert.NoError(t, m.WriteFile("/broken", []byte("x"), 0644))
}

func TestMemoryFS_SnapshotAndStats(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.WriteFile("/f", []byte("x"), 0644))
	require.NoError(t, m.Symlink("/f", "/l"))
	_, _ = m.ReadFile("/f")

	snap := m.Snapshot()
	assert.Equal(t, "x", snap["/f"])
	assert.Equal(t, "-> /f", snap["/l"])
	assert.Equal(t, "<dir>", snap["/"])
	assert.Equal(t, []string{"/", "/f", "/l"}, m.Paths())

	reads, writes := m.Stats()
	assert.Equal(t, 1, reads)
	assert.Equal(t, 1, writes)
}
