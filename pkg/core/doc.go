// Package core implements the reconciliation engine for dot.
//
// # Entry States
//
// Every manifest entry is in one of these states, judged by what occupies
// its resolved original location:
//
//   - Linked: a symlink. This is the converged state.
//   - MissingLink: nothing. Sync creates the link.
//   - Conflict: a file or directory that is not a symlink. Nothing is
//     ever overwritten; sync reports it and moves on.
//
// A path that is not in the manifest is Untracked.
//
// # Operations
//
// Init, Add and Remove each perform one load/mutate/persist cycle and
// rewrite the whole manifest after a successful mutation. Sync only
// creates links and never writes the manifest. IsUpToDate and Status are
// read-only.
//
// Add is not atomic: the file is moved, then linked, then recorded. An
// interruption between those steps leaves an unrecorded move behind, which
// Status does not detect.
package core
