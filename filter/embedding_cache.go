package filter

import (
	"sync"
	"time"
)

const (
	cacheTTL       = time.Hour
	cacheSweepSize = 100
)

type cacheEntry struct {
	vector     []float32
	computedAt time.Time
}

// EmbeddingCache is a per-instance, best-effort cache of text embeddings.
// Entries expire after an hour; expired entries are swept once the cache
// grows past 100 entries. Staleness across serving instances only costs a
// duplicate embedding computation, never correctness.
type EmbeddingCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewEmbeddingCache creates an empty cache.
func NewEmbeddingCache() *EmbeddingCache {
	return &EmbeddingCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached vector for text, or false when absent or expired.
func (c *EmbeddingCache) Get(text string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[text]
	if !ok || c.now().Sub(entry.computedAt) >= cacheTTL {
		return nil, false
	}
	return entry.vector, true
}

// Put stores a vector and sweeps expired entries when the cache is over
// capacity.
func (c *EmbeddingCache) Put(text string, vector []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[text] = cacheEntry{vector: vector, computedAt: now}

	if len(c.entries) > cacheSweepSize {
		for key, entry := range c.entries {
			if now.Sub(entry.computedAt) >= cacheTTL {
				delete(c.entries, key)
			}
		}
	}
}

// Len reports the current entry count.
func (c *EmbeddingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
