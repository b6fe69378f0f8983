package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// maxLinkDepth bounds symlink resolution, matching the usual ELOOP limit
const maxLinkDepth = 40

// MemoryFS implements types.FS interface with in-memory storage.
// Nodes are kept in a flat map keyed by cleaned absolute path.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode
	cwd   string
	umask os.FileMode

	// Error injection
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	linkDest string
}

func (n *fileNode) isDir() bool  { return n.mode.IsDir() }
func (n *fileNode) isLink() bool { return n.mode&os.ModeSymlink != 0 }

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | os.ModeDir, modTime: time.Now()},
		},
		cwd:        "/",
		umask:      0022,
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute form
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.cwd, path)
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) injected(op, path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

// lookup returns the node at path without following a final symlink.
// Intermediate symlinked directories are resolved.
func (m *MemoryFS) lookup(op, path string) (string, *fileNode, error) {
	path = m.normalizePath(path)
	if err := m.injected(op, path); err != nil {
		return path, nil, err
	}

	if path != "/" {
		parent, err := m.resolve(op, filepath.Dir(path), 0)
		if err != nil {
			return path, nil, err
		}
		path = filepath.Join(parent, filepath.Base(path))
	}

	node, ok := m.nodes[path]
	if !ok {
		return path, nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return path, node, nil
}

// resolve follows symlinks until it reaches a non-link node and returns
// that node's resolved path
func (m *MemoryFS) resolve(op, path string, depth int) (string, error) {
	if depth > maxLinkDepth {
		return "", &fs.PathError{Op: op, Path: path, Err: errors.New("too many levels of symbolic links")}
	}

	resolved, node, err := m.lookup(op, path)
	if err != nil {
		return "", err
	}
	if !node.isLink() {
		return resolved, nil
	}

	target := node.linkDest
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(resolved), target)
	}
	return m.resolve(op, target, depth+1)
}

// parentDir checks that the parent of path exists and is a directory and
// returns the resolved path for the new entry
func (m *MemoryFS) parentDir(op, path string) (string, error) {
	path = m.normalizePath(path)
	if err := m.injected(op, path); err != nil {
		return "", err
	}

	parent, err := m.resolve(op, filepath.Dir(path), 0)
	if err != nil {
		return "", err
	}
	if !m.nodes[parent].isDir() {
		return "", &fs.PathError{Op: op, Path: path, Err: errors.New("not a directory")}
	}
	return filepath.Join(parent, filepath.Base(path)), nil
}

// ReadFile reads the entire file content, following symlinks
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++

	resolved, err := m.resolve("read", name, 0)
	if err != nil {
		return nil, err
	}

	node := m.nodes[resolved]
	if node.isDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating it and its parent directories
// if necessary. Writing through a symlink writes its target.
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	path := m.normalizePath(name)
	if err := m.injected("write", path); err != nil {
		return err
	}

	if resolved, err := m.resolve("write", path, 0); err == nil {
		path = resolved
	}

	if existing, ok := m.nodes[path]; ok && existing.isDir() {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	if err := m.mkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	target, err := m.parentDir("write", path)
	if err != nil {
		return err
	}

	node := &fileNode{
		mode:    perm &^ m.umask,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)
	m.nodes[target] = node

	return nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, err := m.resolve("stat", name, 0)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: m.nodes[resolved], name: filepath.Base(name)}, nil
}

// Lstat returns file info without following a final symlink
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.lookup("lstat", name)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// Remove removes a file, symlink or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, node, err := m.lookup("remove", name)
	if err != nil {
		return err
	}
	if path == "/" {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}

	if node.isDir() && len(m.descendants(path)) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
	}

	delete(m.nodes, path)
	return nil
}

// RemoveAll removes a file or directory recursively. A missing path is not an error.
func (m *MemoryFS) RemoveAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, _, err := m.lookup("remove", name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if path == "/" {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}

	for _, p := range m.descendants(path) {
		delete(m.nodes, p)
	}
	delete(m.nodes, path)
	return nil
}

// Rename moves a file, symlink or directory tree. An existing file or
// empty directory at the destination is replaced.
func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, node, err := m.lookup("rename", oldpath)
	if err != nil {
		return err
	}
	to, err := m.parentDir("rename", newpath)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if node.isDir() && strings.HasPrefix(to, from+"/") {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrInvalid}
	}

	if existing, ok := m.nodes[to]; ok {
		if existing.isDir() && len(m.descendants(to)) > 0 {
			return &fs.PathError{Op: "rename", Path: newpath, Err: errors.New("directory not empty")}
		}
		if existing.isDir() != node.isDir() {
			return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrExist}
		}
	}

	moved := map[string]*fileNode{to: node}
	for _, p := range m.descendants(from) {
		moved[to+strings.TrimPrefix(p, from)] = m.nodes[p]
		delete(m.nodes, p)
	}
	delete(m.nodes, from)
	for p, n := range moved {
		m.nodes[p] = n
	}
	return nil
}

// descendants lists every node strictly beneath dir
func (m *MemoryFS) descendants(dir string) []string {
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	var out []string
	for p := range m.nodes {
		if p != dir && strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = m.normalizePath(path)
	if err := m.injected("mkdir", path); err != nil {
		return err
	}

	if resolved, err := m.resolve("mkdir", path, 0); err == nil {
		if !m.nodes[resolved].isDir() {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("not a directory")}
		}
		return nil
	}

	if parent := filepath.Dir(path); parent != path {
		if err := m.mkdirAll(parent, perm); err != nil {
			return err
		}
	}

	target, err := m.parentDir("mkdir", path)
	if err != nil {
		return err
	}
	if existing, ok := m.nodes[target]; ok {
		// dangling symlink in the way
		if !existing.isDir() {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		}
		return nil
	}
	m.nodes[target] = &fileNode{mode: perm | os.ModeDir, modTime: time.Now()}
	return nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.lookup("readlink", name)
	if err != nil {
		return "", err
	}
	if !node.isLink() {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

// Symlink creates a symbolic link at link pointing at target
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := m.parentDir("symlink", link)
	if err != nil {
		return err
	}
	if _, exists := m.nodes[path]; exists {
		return &fs.PathError{Op: "symlink", Path: link, Err: fs.ErrExist}
	}

	m.nodes[path] = &fileNode{
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		linkDest: target,
	}
	return nil
}

// Getwd returns the current working directory
func (m *MemoryFS) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cwd, nil
}

// Chdir changes the current working directory
func (m *MemoryFS) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, err := m.resolve("chdir", dir, 0)
	if err != nil {
		return err
	}
	if !m.nodes[resolved].isDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: errors.New("not a directory")}
	}

	m.cwd = resolved
	return nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// ClearErrors removes every injected error
func (m *MemoryFS) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths = make(map[string]error)
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

// Snapshot describes every node, for comparing whole filesystem states.
// Files map to their content, directories to "<dir>" and links to "-> target".
func (m *MemoryFS) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.nodes))
	for p, n := range m.nodes {
		switch {
		case n.isLink():
			out[p] = "-> " + n.linkDest
		case n.isDir():
			out[p] = "<dir>"
		default:
			out[p] = string(n.content)
		}
	}
	return out
}

// Paths lists every node path in sorted order
func (m *MemoryFS) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.nodes))
	for p := range m.nodes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir() }
func (fi *fileInfo) Sys() interface{}   { return nil }
