package utils

import (
	"os"
	"path/filepath"

	"github.com/kettlegym/zenithgen/internal/errors"
)

// FindProjectRoot searches for a directory containing marker (a relative path
// such as Packages/Zenith/Sources/Zenith) starting from startDir and walking
// up at most maxLevels parents. It returns the directory holding the marker.
func FindProjectRoot(startDir, marker string, maxLevels int) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve path", startDir, err)
	}

	for level := 0; level <= maxLevels; level++ {
		info, err := os.Stat(filepath.Join(currentDir, marker))
		if err == nil && info.IsDir() {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.NotFound("project root containing", marker).
		WithSuggestion("run from inside the project or pass -root")
}
