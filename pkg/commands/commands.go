// Package commands provides high-level command implementations for dot.
//
// This package is the orchestration layer between the CLI and the
// reconciliation engine. Each command resolves configuration, takes the
// repository lock when it mutates state, loads the manifest and runs one
// engine operation.
package commands

import (
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/core"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/lock"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/symlink"
	"github.com/arthur-debert/dot/pkg/types"
)

// Options are shared by every command
type Options struct {
	// RepoDir is the repository directory. Empty uses the working directory.
	RepoDir string

	// Config is the resolved configuration. Nil loads it for RepoDir.
	Config *config.Config

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS

	// Resolver overrides the home and working directory used for paths
	Resolver *paths.Resolver

	// Reporter receives outcomes (defaults to discarding them)
	Reporter types.Reporter
}

// session is one prepared invocation
type session struct {
	service *core.Service
	lock    *lock.Lock
}

func (s *session) close() {
	if err := s.lock.Release(); err != nil {
		logger := logging.GetLogger("commands")
		logger.Warn().Err(err).Msg("Failed to release repository lock")
	}
}

// open prepares a session. Mutating sessions hold the repository lock
// until close. Init runs without a manifest; every other command loads it.
func open(opts Options, mutating, loadManifest bool) (*session, error) {
	logger := logging.GetLogger("commands")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	files := filesystem.NewPort(fsys)

	cwd, err := files.CurrentDirectory()
	if err != nil {
		return nil, err
	}
	resolver := paths.NewResolver(cwd)
	if opts.Resolver != nil {
		resolver = *opts.Resolver
	}

	repoDir := resolver.Cwd
	if opts.RepoDir != "" {
		repoDir = resolver.Absolute(opts.RepoDir)
	}

	cfg := opts.Config
	if cfg == nil {
		if cfg, err = config.Load(config.LoadOptions{RepoDir: repoDir}); err != nil {
			return nil, err
		}
	}
	manPath := cfg.ManifestPath(repoDir)

	s := &session{}
	if mutating && cfg.Lock.Enabled {
		lockPath := filepath.Join(repoDir, paths.LockFileName)
		if err := files.EnsureParentDirectories(lockPath); err != nil {
			return nil, err
		}
		if s.lock, err = lock.Acquire(lockPath); err != nil {
			return nil, err
		}
	}

	var m *manifest.Manifest
	if loadManifest {
		if m, err = manifest.Load(files, manPath); err != nil {
			s.close()
			return nil, err
		}
	}

	logger.Debug().
		Str("repo", repoDir).
		Str("manifest", manPath).
		Bool("locked", s.lock != nil).
		Msg("Opened repository")

	s.service = core.New(core.Options{
		Files:          files,
		Links:          symlink.New(fsys, files),
		Manifest:       m,
		RepoDir:        repoDir,
		ManifestPath:   manPath,
		Resolver:       resolver,
		Reporter:       opts.Reporter,
		ProtectedPaths: cfg.Security.ProtectedPaths,
	})
	return s, nil
}
