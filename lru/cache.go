// Package lru provides a bounded in-memory docnamer.NameCache.
package lru

import (
	"context"

	"github.com/fwojciec/docnamer"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Ensure Cache implements docnamer.NameCache at compile time.
var _ docnamer.NameCache = (*Cache)(nil)

// Cache is an LRU-evicting name cache. It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, []string]
}

// NewCache creates a Cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, []string](size)
	if err != nil {
		return nil, docnamer.Errorf(docnamer.EINVALID, "lru cache size %d: %v", size, err)
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached names for the key.
func (c *Cache) Get(ctx context.Context, key string) ([]string, bool, error) {
	names, ok := c.entries.Get(key)
	return names, ok, nil
}

// Put stores names for the key, evicting the least recently used entry
// when the cache is full.
func (c *Cache) Put(ctx context.Context, key string, names []string) error {
	c.entries.Add(key, names)
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
