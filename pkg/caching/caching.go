package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// PageCache is a file-based cache with a TTL, used to avoid rescraping the
// discovery page on repeated local runs. Document bodies are never cached
// here; those go through the content store.
type PageCache struct {
	path string
	ttl  time.Duration
}

// NewPageCache creates the cache directory if needed.
func NewPageCache(path string, ttl time.Duration) (*PageCache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &PageCache{path: path, ttl: ttl}, nil
}

// key hashes the URL into a stable filename.
func (c *PageCache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash)
}

// Get returns the cached page and true when present and not expired.
func (c *PageCache) Get(url string) ([]byte, bool) {
	filePath := filepath.Join(c.path, c.key(url))

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a fetched page.
func (c *PageCache) Set(url string, data []byte) error {
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
