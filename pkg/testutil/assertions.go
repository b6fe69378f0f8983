package testutil

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/dot/pkg/types"
)

// AssertSymlink fails the test unless link is a symlink pointing at target
func AssertSymlink(t *testing.T, fsys types.FS, link, target string) {
	t.Helper()

	info, err := fsys.Lstat(link)
	if err != nil {
		t.Errorf("expected symlink at %s: %v", link, err)
		return
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("expected %s to be a symlink, mode is %s", link, info.Mode())
		return
	}
	got, err := fsys.Readlink(link)
	if err != nil {
		t.Errorf("failed to read link %s: %v", link, err)
		return
	}
	if got != target {
		t.Errorf("symlink %s points at %q, want %q", link, got, target)
	}
}

// AssertRegularFile fails the test unless path is a plain file with content
func AssertRegularFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	info, err := fsys.Lstat(path)
	if err != nil {
		t.Errorf("expected file at %s: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("expected %s to be a regular file, mode is %s", path, info.Mode())
		return
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read %s: %v", path, err)
		return
	}
	if string(data) != content {
		t.Errorf("content of %s is %q, want %q", path, data, content)
	}
}

// AssertNotExists fails the test if anything occupies path
func AssertNotExists(t *testing.T, fsys types.FS, path string) {
	t.Helper()

	if _, err := fsys.Lstat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
