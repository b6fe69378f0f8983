package config

import (
	"github.com/arthur-debert/dot/pkg/errors"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved configuration of one invocation
type Config struct {
	Manifest Manifest `koanf:"manifest"`
	Output   Output   `koanf:"output"`
	Lock     Lock     `koanf:"lock"`
	Security Security `koanf:"security"`
}

// Manifest configures the manifest file
type Manifest struct {
	// File is the manifest name, relative to the repository directory
	File string `koanf:"file"`
}

// Output configures presentation
type Output struct {
	Format string `koanf:"format"`
	Quiet  bool   `koanf:"quiet"`
}

// Lock configures the repository lock
type Lock struct {
	Enabled bool `koanf:"enabled"`
}

// Security lists paths dot refuses to track
type Security struct {
	ProtectedPaths []string `koanf:"protected_paths"`
}

// Validate checks values that cannot be enforced by decoding alone
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigLoad,
			"invalid output.format %q (want auto, term, text or json)", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Manifest.File == "" {
		return errors.New(errors.ErrConfigLoad, "manifest.file cannot be empty").
			WithDetail("key", "manifest.file")
	}
	return nil
}
