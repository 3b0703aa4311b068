package fileops

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of file contents kept when no size is configured
const DefaultCacheSize = 256

// CacheItem represents a cached item with metadata for invalidation
type CacheItem[T any] struct {
	Value   T
	ModTime time.Time
	Size    int64
}

// Cache is a bounded LRU cache whose entries are invalidated when the backing
// file changes on disk
type Cache[V any] struct {
	items *lru.Cache[string, *CacheItem[V]]
}

// NewCache creates a cache holding at most size entries
func NewCache[V any](size int) *Cache[V] {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	items, _ := lru.New[string, *CacheItem[V]](size)
	return &Cache[V]{items: items}
}

// GetWithFileValidation retrieves an item, dropping it if the file was modified
func (c *Cache[V]) GetWithFileValidation(filePath string) (V, bool) {
	var zero V

	item, exists := c.items.Get(filePath)
	if !exists {
		return zero, false
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		c.items.Remove(filePath)
		return zero, false
	}

	if stat.ModTime().After(item.ModTime) || stat.Size() != item.Size {
		c.items.Remove(filePath)
		return zero, false
	}

	return item.Value, true
}

// SetWithFileInfo stores an item along with the file's current metadata
func (c *Cache[V]) SetWithFileInfo(filePath string, value V) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return
	}

	c.items.Add(filePath, &CacheItem[V]{
		Value:   value,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	})
}

// Delete removes an item from the cache
func (c *Cache[V]) Delete(filePath string) {
	c.items.Remove(filePath)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.items.Purge()
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	return c.items.Len()
}

// CacheManager owns the content cache shared by file operations
type CacheManager struct {
	contentCache *Cache[string]
}

// NewCacheManager creates a new CacheManager holding at most size files
func NewCacheManager(size int) *CacheManager {
	return &CacheManager{
		contentCache: NewCache[string](size),
	}
}

// GetContent retrieves cached file content or returns false if not found
func (cm *CacheManager) GetContent(filePath string) (string, bool) {
	return cm.contentCache.GetWithFileValidation(filePath)
}

// SetContent caches file content with file validation
func (cm *CacheManager) SetContent(filePath string, content string) {
	cm.contentCache.SetWithFileInfo(filePath, content)
}

// InvalidateFile removes a specific file from the cache
func (cm *CacheManager) InvalidateFile(filePath string) {
	cm.contentCache.Delete(filePath)
}

// ClearAll clears all cached data
func (cm *CacheManager) ClearAll() {
	cm.contentCache.Clear()
}

// Size returns the number of cached files
func (cm *CacheManager) Size() int {
	return cm.contentCache.Size()
}
