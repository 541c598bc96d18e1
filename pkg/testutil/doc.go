// Package testutil provides utilities for testing housekeeper components.
//
// Key components:
//   - Environment: an isolated dotfiles directory and home directory on the
//     real filesystem (symlinks need a real filesystem)
//   - MemoryEnvironment: the same layout on an afero MemMapFs
//   - FaultyFS: wraps a filesystem.FS and fails chosen operations
//   - Create*/Assert* helpers for building and checking trees
package testutil
