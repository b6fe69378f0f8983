package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvRepo overrides the repository directory
	EnvRepo = "DOT_REPO"
)

// File names inside a repository directory. These are not configurable
// apart from the manifest name, which pkg/config may override.
const (
	// ManifestFileName is the default manifest file name
	ManifestFileName = "dot.toml"

	// LockFileName is the advisory lock file taken by mutating commands
	LockFileName = ".dot.lock"

	// RepoConfigFileName is the per-repository configuration file
	RepoConfigFileName = ".dot_config.toml"

	// HomeMarker replaces the home directory prefix in portable paths
	HomeMarker = "~"
)

// Resolver converts between absolute and portable paths for one home
// directory and working directory.
type Resolver struct {
	// Home is the current user's home directory. Empty means unknown.
	Home string

	// Cwd is the directory relative paths are resolved against
	Cwd string
}

// NewResolver builds a Resolver from the process environment.
// A missing home directory is not an error here; conversions that need it
// fail later with ErrNoHomeDirectory.
func NewResolver(cwd string) Resolver {
	home, _ := GetHomeDirectory()
	return Resolver{Home: home, Cwd: cwd}
}

// Absolute resolves path lexically. Relative paths start from Cwd,
// "." components are dropped and ".." pops the previous component
// (a no-op at the root).
func (r Resolver) Absolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	base := r.Cwd
	if base == "" {
		base = string(filepath.Separator)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// ToPortable returns the portable form of path
func (r Resolver) ToPortable(path string) (string, error) {
	home, err := r.home()
	if err != nil {
		return "", err
	}

	abs := r.Absolute(path)
	if abs == home {
		return HomeMarker, nil
	}
	if rest, ok := strings.CutPrefix(abs, withSeparator(home)); ok {
		return HomeMarker + string(filepath.Separator) + rest, nil
	}
	return abs, nil
}

// FromPortable expands a leading "~" component against Home.
// "~user" forms and all other paths are returned unchanged.
func (r Resolver) FromPortable(path string) (string, error) {
	home, err := r.home()
	if err != nil {
		return "", err
	}

	if path == HomeMarker {
		return home, nil
	}
	if rest, ok := strings.CutPrefix(path, HomeMarker+"/"); ok {
		return filepath.Join(home, rest), nil
	}
	if filepath.Separator != '/' {
		if rest, ok := strings.CutPrefix(path, HomeMarker+string(filepath.Separator)); ok {
			return filepath.Join(home, rest), nil
		}
	}
	return path, nil
}

func (r Resolver) home() (string, error) {
	if r.Home == "" {
		return "", errors.New(errors.ErrNoHomeDirectory, "cannot determine home directory")
	}
	return filepath.Clean(r.Home), nil
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		if err == nil {
			return "", errors.New(errors.ErrNoHomeDirectory, "home directory is empty")
		}
		return "", errors.Wrap(err, errors.ErrNoHomeDirectory, "failed to get home directory")
	}
	return homeDir, nil
}

// LocalKey returns the name a path is stored under inside the repository:
// its final component. ok is false for paths without one ("/", ".", "..").
func LocalKey(path string) (key string, ok bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(filepath.Clean(path))
	switch base {
	case ".", "..", string(filepath.Separator), "":
		return "", false
	}
	return base, true
}

// ContainsPath reports whether child is parent or lies beneath it.
// Both paths must already be absolute.
func ContainsPath(parent, child string) bool {
	parent = filepath.Clean(parent)
	child = filepath.Clean(child)
	if parent == child {
		return true
	}
	return strings.HasPrefix(child, withSeparator(parent))
}

func withSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}
