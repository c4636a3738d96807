package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath returns the cleaned absolute path with symlinks resolved when it exists.
// A path that does not exist is returned absolute and cleaned.
func (f *realFS) ResolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if os.IsNotExist(err) {
		return absPath, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}
	return resolved, nil
}
