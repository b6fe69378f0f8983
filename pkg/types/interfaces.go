package types

import (
	"io/fs"
)

// FS is the primitive filesystem interface a backend implements.
// Paths are passed through unchanged; backends do no resolution of their own.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	Getwd() (string, error)
}

// FileSystem is the capability set the reconciliation engine needs.
// Every failure is returned as an IO error carrying the path involved.
type FileSystem interface {
	// Exists reports whether anything occupies path. A dangling symlink exists.
	Exists(path string) bool
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	// Remove deletes path, recursively when it is a directory
	Remove(path string) error
	Rename(from, to string) error
	EnsureParentDirectories(path string) error
	CurrentDirectory() (string, error)
}

// SymlinkOperations creates and inspects symbolic links
type SymlinkOperations interface {
	// CreateSymlink creates a link at to pointing at the absolute
	// resolution of from
	CreateSymlink(from, to string) (SymLink, error)
	IsSymlink(path string) (bool, error)
	ReadLink(path string) (string, error)
}

// Reporter receives user-facing outcomes from the engine
type Reporter interface {
	Report(outcome Outcome)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(Outcome)

// Report calls f(outcome)
func (f ReporterFunc) Report(outcome Outcome) {
	f(outcome)
}

// NopReporter discards every outcome
var NopReporter Reporter = ReporterFunc(func(Outcome) {})
