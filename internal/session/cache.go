package session

import "sync"

type cacheKey struct {
	itemID   int64
	language string
}

// Cache holds translations keyed by (item id, language) for one session.
// It is unbounded, never persisted and safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Get returns the cached translation of itemID into language.
func (c *Cache) Get(itemID int64, language string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.entries[cacheKey{itemID, language}]
	return text, ok
}

// Put stores text, replacing any previous entry for the same key.
func (c *Cache) Put(itemID int64, language, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{itemID, language}] = text
}

// Evict drops the translations of itemID in every language.
func (c *Cache) Evict(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.itemID == itemID {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
