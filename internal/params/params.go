package params

import (
	"path/filepath"
	"sync"

	"github.com/inovacc/edcourse/internal/application"
	"github.com/inovacc/edcourse/internal/encoding"
)

var (
	once    sync.Once
	dataDir string
	errData error
)

// AppdataDir returns the directory holding the database and log file,
// creating it on first use.
func AppdataDir() (string, error) {
	once.Do(resolveAppdataDir)

	return dataDir, errData
}

// AppdataPath joins name onto the application data directory.
func AppdataPath(name string) (string, error) {
	dir, err := AppdataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

func resolveAppdataDir() {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		errData = err
		return
	}

	if err := encoding.EnsureDir(dir); err != nil {
		errData = err
		return
	}

	dataDir = dir
}
