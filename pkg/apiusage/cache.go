package apiusage

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultCacheTTL mirrors the provider quota guidance: identical queries
// within ten minutes should not reach the provider twice.
const DefaultCacheTTL = 10 * time.Minute

// TTLCache is a key/value store with a single fixed TTL per instance.
// Entries are never evicted on write; expiry happens lazily on Get or
// via an explicit SweepExpired. Last write wins under concurrency.
type TTLCache struct {
	ttl   time.Duration
	store *cache.Cache
}

// NewTTLCache returns a cache whose entries expire ttl after being
// stored. Non-positive ttl falls back to DefaultCacheTTL.
func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	// Cleanup interval zero disables the janitor goroutine; the cache is
	// self-correcting through lazy expiry on read.
	return &TTLCache{
		ttl:   ttl,
		store: cache.New(ttl, 0),
	}
}

// Get returns the stored value and whether it exists and is still live.
func (c *TTLCache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Put stores value under key, overwriting any previous entry and
// restarting its TTL.
func (c *TTLCache) Put(key string, value any) {
	c.store.Set(key, value, cache.DefaultExpiration)
}

// SweepExpired removes every entry whose TTL has elapsed. Calling it is
// optional and safe at any time.
func (c *TTLCache) SweepExpired() {
	c.store.DeleteExpired()
}

// TTL reports the fixed expiry applied to every entry.
func (c *TTLCache) TTL() time.Duration {
	return c.ttl
}

// ItemCount reports the number of stored entries, expired included.
func (c *TTLCache) ItemCount() int {
	return c.store.ItemCount()
}
