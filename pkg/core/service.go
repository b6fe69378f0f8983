package core

import (
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/types"
)

// Options configures a Service
type Options struct {
	Files types.FileSystem
	Links types.SymlinkOperations

	// Manifest is the loaded manifest. It may be nil before Init.
	Manifest *manifest.Manifest

	RepoDir      string
	ManifestPath string
	Resolver     paths.Resolver
	Reporter     types.Reporter

	// ProtectedPaths may never be added. Entries are portable or absolute
	// and protect everything beneath them.
	ProtectedPaths []string
}

// Service runs the reconciliation operations against one repository
type Service struct {
	files     types.FileSystem
	links     types.SymlinkOperations
	manifest  *manifest.Manifest
	repoDir   string
	manPath   string
	resolver  paths.Resolver
	reporter  types.Reporter
	protected []string
}

// New creates a Service
func New(opts Options) *Service {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = types.NopReporter
	}
	manPath := opts.ManifestPath
	if manPath == "" {
		manPath = filepath.Join(opts.RepoDir, paths.ManifestFileName)
	}
	return &Service{
		files:     opts.Files,
		links:     opts.Links,
		manifest:  opts.Manifest,
		repoDir:   opts.RepoDir,
		manPath:   manPath,
		resolver:  opts.Resolver,
		reporter:  reporter,
		protected: opts.ProtectedPaths,
	}
}

// Manifest returns the in-memory manifest
func (s *Service) Manifest() *manifest.Manifest {
	return s.manifest
}

// Init writes an empty manifest. It fails if one already exists.
func (s *Service) Init() error {
	logger := logging.GetLogger("core.init")

	if s.files.Exists(s.manPath) {
		return errors.Newf(errors.ErrAlreadyExists, "manifest %s already exists", s.manPath).
			WithPath(s.manPath)
	}

	m := manifest.Empty()
	if err := m.Save(s.files, s.manPath); err != nil {
		return err
	}
	s.manifest = m

	logger.Info().Str("manifest", s.manPath).Msg("Initialized repository")
	s.report(types.OutcomeSuccess, "init", "Initialized empty manifest", s.manPath)
	return nil
}

func (s *Service) localPath(key string) string {
	return filepath.Join(s.repoDir, key)
}

func (s *Service) requireManifest() error {
	if s.manifest == nil {
		return errors.Newf(errors.ErrNotFound, "no manifest at %s, run 'dot init' first", s.manPath).
			WithPath(s.manPath)
	}
	return nil
}

func (s *Service) persist() error {
	logger := logging.GetLogger("core")
	if err := s.manifest.Save(s.files, s.manPath); err != nil {
		return err
	}
	logger.Debug().Str("manifest", s.manPath).Int("entries", s.manifest.Len()).Msg("Saved manifest")
	return nil
}

func (s *Service) report(kind types.OutcomeKind, op, message, path string) {
	s.reporter.Report(types.Outcome{Kind: kind, Op: op, Message: message, Path: path})
}
