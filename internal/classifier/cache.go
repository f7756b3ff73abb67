package classifier

import (
	"sync"

	"lmercier/finpipe/internal/models"
)

// CacheEntry is a memoized enrichment outcome for one normalized
// description. Answered is false when the remote call produced no usable
// label; the miss is still remembered so the description is asked over the
// network at most once per process.
type CacheEntry struct {
	Label    models.Label
	Answered bool
}

// Cache memoizes enrichment outcomes by normalized description. It is an
// injected collaborator so tests can reset it or substitute a fake; the
// production implementation lives for the process.
type Cache interface {
	// Lookup returns the memoized entry and whether one exists.
	Lookup(description string) (CacheEntry, bool)

	// Store memoizes an outcome. Entries are only ever added, never
	// invalidated.
	Store(description string, entry CacheEntry)
}

// MemoryCache is the default in-process Cache. Concurrent batches may race
// on population; the only cost is a duplicate remote call.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]CacheEntry
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]CacheEntry)}
}

// Lookup returns the memoized entry for a description, if any.
func (c *MemoryCache) Lookup(description string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[description]
	return entry, ok
}

// Store memoizes an outcome for a description.
func (c *MemoryCache) Store(description string, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[description] = entry
}

// Len returns the number of memoized descriptions.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
