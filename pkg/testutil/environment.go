package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/symlink"
	"github.com/arthur-debert/dot/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a repository and home directory wired to the
// filesystem and symlink ports
type TestEnvironment struct {
	RepoDir string
	HomeDir string

	// Core dependencies
	FS       types.FS
	Files    types.FileSystem
	Links    *symlink.Operations
	Resolver paths.Resolver
	Reporter *RecordingReporter

	// Memory is set for EnvMemoryOnly
	Memory *MemoryFS

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The working
// directory is the repository directory.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.RepoDir = "/virtual/repo"
		env.HomeDir = "/virtual/home"
		env.Memory = NewMemoryFS()
		env.FS = env.Memory
	case EnvIsolated:
		tempDir := t.TempDir()
		// macOS temp dirs live behind a /var symlink
		if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
			tempDir = resolved
		}
		env.RepoDir = filepath.Join(tempDir, "repo")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = filesystem.NewOS()
	}

	for _, dir := range []string{env.RepoDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if env.Memory != nil {
		if err := env.Memory.Chdir(env.RepoDir); err != nil {
			t.Fatalf("Failed to chdir: %v", err)
		}
	} else {
		t.Chdir(env.RepoDir)
	}

	t.Setenv("HOME", env.HomeDir)

	env.Files = filesystem.NewPort(env.FS)
	env.Links = symlink.New(env.FS, env.Files)
	env.Resolver = paths.Resolver{Home: env.HomeDir, Cwd: env.RepoDir}
	env.Reporter = &RecordingReporter{}

	return env
}

// ManifestPath returns the manifest location inside the repository
func (env *TestEnvironment) ManifestPath() string {
	return filepath.Join(env.RepoDir, paths.ManifestFileName)
}

// Home joins elements onto the home directory
func (env *TestEnvironment) Home(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// Repo joins elements onto the repository directory
func (env *TestEnvironment) Repo(elem ...string) string {
	return filepath.Join(append([]string{env.RepoDir}, elem...)...)
}

// WriteFile creates a file with content, failing the test on error
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()

	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Symlink creates a link at link pointing at target
func (env *TestEnvironment) Symlink(target, link string) {
	env.t.Helper()

	if err := env.FS.MkdirAll(filepath.Dir(link), 0755); err != nil {
		env.t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}
	if err := env.FS.Symlink(target, link); err != nil {
		env.t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}
