package testutil

import (
	"os"
	"testing"
)

// AssertSymlink checks that link is a symlink whose target is exactly target.
func AssertSymlink(t *testing.T, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", link, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to be a symlink, mode is %v", link, info.Mode())
		return
	}

	got, err := os.Readlink(link)
	if err != nil {
		t.Errorf("Failed to read symlink %s: %v", link, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points to %s, expected %s", link, got, target)
	}
}

// AssertRegularFile checks that path is a regular file with the given content.
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Expected %s to be a regular file, mode is %v", path, info.Mode())
		return
	}
	if got := ReadFile(t, path); got != content {
		t.Errorf("File %s content = %q, expected %q", path, got, content)
	}
}

// AssertDir checks that path is a real directory.
func AssertDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected directory at %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, mode is %v", path, info.Mode())
	}
}

// AssertNotExists checks that nothing exists at path, not even a dangling link.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("Expected nothing at %s, got err=%v", path, err)
	}
}
