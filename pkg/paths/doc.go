// Package paths provides path handling for housekeeper.
//
// It resolves the user's home directory, expands a leading ~ and computes
// the canonical (absolute, symlink free) location of dotfiles so that the
// links housekeeper creates keep working when the dotfiles directory was
// given as a relative path or through another symlink.
//
// # Usage
//
//	home, err := paths.HomeDirectory()
//	if err != nil {
//	    return err
//	}
//
//	dest := paths.DotPath(home, "vimrc")        // /home/user/.vimrc
//	src, err := paths.Canonicalize("./vimrc")   // /home/user/dotfiles/vimrc
package paths
