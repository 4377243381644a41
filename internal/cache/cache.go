// Package cache is a small in-memory TTL cache for rendered responses.
// Entries are lost on restart; that is acceptable since every cached value
// can be recomputed from the request.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache stores rendered response bodies keyed by request fingerprint. It is
// safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a cache whose entries expire after ttl. A non-positive ttl
// disables caching entirely: Get always misses and Set is a no-op.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key, treating expired entries as misses
// and dropping them lazily.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	// Copy so callers cannot mutate the cached bytes.
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true
}

// Set stores a copy of value under key.
func (c *Cache) Set(key string, value []byte) {
	if c.ttl <= 0 {
		return
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = entry{value: stored, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Len reports the number of stored entries, including not-yet-evicted
// expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key fingerprints the given request parts into a stable cache key.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
