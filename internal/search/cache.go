package search

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/arjunnegi0016/Chess-Bot-Project/internal/errors"
)

// CacheEntry is a searched score together with the remaining depth it was
// searched to.
type CacheEntry struct {
	Depth int
	Score int
}

// Cache is a fixed-capacity, least-recently-used map from position
// fingerprints to search results. It is owned by one engine and is not
// safe for concurrent use.
type Cache struct {
	lru       *simplelru.LRU[string, CacheEntry]
	capacity  int
	evictions int
}

// NewCache creates an empty cache holding at most capacity entries.
func NewCache(capacity int) (*Cache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache capacity %d: %w", capacity, errors.ErrInvalidConfig)
	}
	c := &Cache{capacity: capacity}
	lru, err := simplelru.NewLRU[string, CacheEntry](capacity, func(string, CacheEntry) {
		c.evictions++
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating LRU")
	}
	c.lru = lru
	return c, nil
}

// Get returns the entry for fingerprint and marks it most recently used.
func (c *Cache) Get(fingerprint string) (CacheEntry, bool) {
	return c.lru.Get(fingerprint)
}

// Peek returns the entry for fingerprint without touching its recency.
func (c *Cache) Peek(fingerprint string) (CacheEntry, bool) {
	return c.lru.Peek(fingerprint)
}

// Put inserts or overwrites the entry for fingerprint and marks it most
// recently used, evicting the least recently used entry when full.
func (c *Cache) Put(fingerprint string, entry CacheEntry) {
	c.lru.Add(fingerprint, entry)
}

// Lookup returns the entry for fingerprint only if it was searched at
// least depth plies deep. A hit marks the entry most recently used.
func (c *Cache) Lookup(fingerprint string, depth int) (CacheEntry, bool) {
	entry, ok := c.lru.Get(fingerprint)
	if !ok || entry.Depth < depth {
		return CacheEntry{}, false
	}
	return entry, true
}

// Store records entry unless a deeper result is already cached, so the
// cache keeps the deepest evaluation seen for each position.
func (c *Cache) Store(fingerprint string, entry CacheEntry) {
	if existing, ok := c.lru.Peek(fingerprint); ok && existing.Depth > entry.Depth {
		return
	}
	c.lru.Add(fingerprint, entry)
}

// Keys returns the cached fingerprints from least to most recently used.
func (c *Cache) Keys() []string {
	return c.lru.Keys()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Evictions returns how many entries have been pushed out by capacity.
func (c *Cache) Evictions() int {
	return c.evictions
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
	c.evictions = 0
}
