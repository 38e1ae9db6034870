package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "edcourse"

	// AppTitle is the human-facing name shown in the TUI header
	AppTitle = "ED Course Helper"

	// StateKey is the persistence slot holding the serialized application state
	StateKey = "edCourseHelper_v1"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the edcourse data directory path.
// Linux: ~/.config/edcourse (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\edcourse (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
