// Package paths provides the path normalization rules for dot.
//
// Tracked original locations are stored in a portable form so one manifest
// can be reused across machines with different home directories:
//
//   - A path under the current home directory is stored as "~/rest".
//   - Any other path is stored in its lexically absolute form.
//
// All resolution here is syntactic. Nothing in this package touches the
// filesystem; symlinks along a path are never followed.
//
// # Usage
//
//	r := paths.Resolver{Home: "/home/u", Cwd: "/home/u/src"}
//	p, _ := r.ToPortable("../.vimrc")   // "~/.vimrc"
//	a, _ := r.FromPortable("~/.vimrc")  // "/home/u/.vimrc"
package paths
