// Package filesystem provides the filesystem seam used by the installer.
//
// FS covers exactly the calls the scan and link routine makes. NewOS talks
// to the operating system directly; NewAfero adapts any afero.Fs, which lets
// tests run against in-memory trees or sandboxed base paths.
package filesystem
