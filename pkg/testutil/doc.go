// Package testutil provides utilities for testing robe components.
//
// Key components:
//   - TestEnvironment: a storage root and a home directory on either an
//     in-memory filesystem or a real temporary directory
//   - Tree helpers: declarative file trees written through types.FS
//   - FaultyFS: a types.FS wrapper that fails chosen operations
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly for file-level behaviour
//   - Use EnvIsolated whenever directories are renamed or symlinks matter
//   - All test data should be defined inline, not in external files
package testutil
