package fs

import (
	"os"
)

// RemoveIfEmpty removes path when it is an empty directory and reports whether it did.
// A missing path is not an error.
func (f *realFS) RemoveIfEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}
