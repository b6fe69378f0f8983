// Package filesystem provides filesystem implementations for dot.
//
// Backends implement the primitive types.FS interface:
//
//   - NewOS: the real operating system filesystem
//   - NewAferoFS: any spf13/afero filesystem
//   - NewBillyFS: any go-git/go-billy filesystem, including memfs
//
// NewPort wraps a backend in the types.FileSystem port the engine uses,
// so the port semantics are written once for every backend.
package filesystem
