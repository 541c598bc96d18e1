// Package dotfiles scans a dotfiles directory and links every file in it
// into a home directory under a dotted name.
//
// The flow is two steps. Scan lists the immediate, non-directory entries of
// the source directory in name order. An Installer then links each one to
// <home>/.<name>, applying the conflict policy:
//
//   - nothing at the destination: link
//   - a real directory: skip with a warning, never touch it
//   - a plain file: skip with a warning unless force is set, then replace
//   - a symlink (stale or not): always replace
//
// Skips are reported in-band as Outcomes. Any I/O failure while
// canonicalizing, removing or linking stops the run and is returned as an
// error carrying the offending path.
package dotfiles
