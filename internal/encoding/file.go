package encoding

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
// Uses 0700 permissions since the directory holds patient notes.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// EnsureParentDir ensures the parent directory of a file path exists.
func EnsureParentDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}
