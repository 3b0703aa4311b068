package fileops

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileOps provides a unified interface for common file operations
// combining path validation, error handling, and caching
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
	cacheManager  *CacheManager
}

// NewFileOps creates a new FileOps instance caching at most cacheSize files
func NewFileOps(cacheSize int) *FileOps {
	return NewFileOpsWithCache(NewCacheManager(cacheSize))
}

// NewFileOpsWithCache creates a FileOps instance with a shared cache manager
func NewFileOpsWithCache(cacheManager *CacheManager) *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
		cacheManager:  cacheManager,
	}
}

// CacheManager returns the cache manager instance
func (fo *FileOps) CacheManager() *CacheManager {
	return fo.cacheManager
}

// ReadFile reads a file and returns its contents as a string with caching
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", err
	}

	if cached, exists := fo.cacheManager.GetContent(cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	contentStr := string(content)
	fo.cacheManager.SetContent(cleanPath, contentStr)

	return contentStr, nil
}

// WriteFile writes content to a file, creating missing parent directories
func (fo *FileOps) WriteFile(filePath string, content []byte, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}

	if err := fo.EnsureDir(filepath.Dir(cleanPath)); err != nil {
		return err
	}

	if err := os.WriteFile(cleanPath, content, perm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	fo.cacheManager.InvalidateFile(cleanPath)
	return nil
}

// EnsureDir creates dirPath and any missing parents
func (fo *FileOps) EnsureDir(dirPath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cleanPath, 0755); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return nil
}

// ListFiles returns the names of the regular, non-hidden files in dirPath
// sorted lexicographically
func (fo *FileOps) ListFiles(dirPath string) ([]string, error) {
	return fo.listEntries(dirPath, false)
}

// ListDirs returns the names of the non-hidden subdirectories of dirPath
// sorted lexicographically
func (fo *FileOps) ListDirs(dirPath string) ([]string, error) {
	return fo.listEntries(dirPath, true)
}

func (fo *FileOps) listEntries(dirPath string, dirs bool) ([]string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(dirPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapDirectoryReadError(cleanPath, err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || entry.IsDir() != dirs {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Invalidate drops any cached content for filePath
func (fo *FileOps) Invalidate(filePath string) {
	fo.cacheManager.InvalidateFile(filepath.Clean(filePath))
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
