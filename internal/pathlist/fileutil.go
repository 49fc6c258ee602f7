package pathlist

import (
	"os"
	"path/filepath"
)

// IsValidDir reports whether path names an existing directory, following
// symlinks. A path that does not exist is simply invalid, not an error; a
// broken symlink counts as nonexistent. An error is returned only when an
// existing path's metadata cannot be read (permissions and the like).
func IsValidDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Covers missing paths and symlinks pointing nowhere.
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Canonicalize resolves path to its canonical absolute form: relative
// components made absolute, all symlinks resolved. The second return is
// false when path is not a valid directory. EvalSymlinks caps link-chain
// depth, so a symlink cycle fails with an error instead of looping.
//
// If the resolved form comes back empty the original path is returned
// unchanged rather than treating it as a failure.
func Canonicalize(path string) (string, bool, error) {
	valid, err := IsValidDir(path)
	if err != nil || !valid {
		return "", false, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false, err
	}
	if canonical == "" {
		canonical = path
	}
	return canonical, true, nil
}
