// Package testutil provides utilities for testing dot components.
//
// Key components:
//   - TestEnvironment: repository and home directories wired to the
//     filesystem and symlink ports, either in memory or in a temp directory
//   - MemoryFS: in-memory filesystem with real symlink nodes and error injection
//   - RecordingReporter and MockReporter: reporter collaborators for assertions
//
// Usage guidelines:
//   - Engine tests should use EnvMemoryOnly for speed and isolation
//   - Backend and CLI tests use EnvIsolated, which touches a t.TempDir
//   - All test data should be defined inline, not in external files
package testutil
