package memory

import (
	"context"
	"sync"
	"time"
)

// CatalogCache is the in-memory CatalogCacheStore. It carries its own lock
// because catalog loading happens outside the save-slot transaction.
type CatalogCache struct {
	mu      sync.Mutex
	entries map[string]cacheRecord
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{entries: make(map[string]cacheRecord)}
}

func (c *CatalogCache) Get(_ context.Context, key string) ([]byte, time.Time, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.entries[key]
	if !ok {
		return nil, time.Time{}, false, nil
	}
	return rec.blob, rec.storedAt, true, nil
}

func (c *CatalogCache) Save(_ context.Context, key string, blob []byte, storedAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheRecord{blob: blob, storedAt: storedAt}
	return nil
}
