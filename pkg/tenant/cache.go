package tenant

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Cache is the interface for tenant caching implementations.
// Caches are best-effort: a miss or a failed write only costs a catalog
// round-trip, never a wrong authorization answer.
type Cache interface {
	// Get retrieves a tenant from cache by key.
	Get(ctx context.Context, key string) (*Tenant, bool)

	// Set stores a tenant in cache with the given TTL.
	Set(ctx context.Context, key string, tenant *Tenant, ttl time.Duration)

	// Delete removes a tenant from cache.
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// DefaultCacheSize is the default maximum number of items in the
// in-memory cache.
const DefaultCacheSize = 1000

// inMemoryCache is the default in-memory cache implementation with TTL
// expiry and LRU eviction.
type inMemoryCache struct {
	mu      sync.RWMutex
	items   map[string]cacheItem
	lru     []string
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

type cacheItem struct {
	tenant    Tenant
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with automatic cleanup of
// expired entries and the default size limit.
func NewInMemoryCache() Cache {
	return NewInMemoryCacheWithSize(DefaultCacheSize)
}

// NewInMemoryCacheWithSize creates an in-memory cache with the given
// size limit.
func NewInMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	cache := &inMemoryCache{
		items:   make(map[string]cacheItem),
		lru:     make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

func (c *inMemoryCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		delete(c.items, key)
		c.removeLRU(key)
		return nil, false
	}

	c.updateLRU(key)

	// Return a copy so callers cannot mutate the cached value.
	t := item.tenant
	t.Features = maps.Clone(t.Features)
	return &t, true
}

func (c *inMemoryCache) Set(ctx context.Context, key string, tenant *Tenant, ttl time.Duration) {
	if tenant == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict the least recently used item when full.
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		if len(c.lru) > 0 {
			evictKey := c.lru[0]
			delete(c.items, evictKey)
			c.lru = c.lru[1:]
		}
	}

	stored := *tenant
	stored.Features = maps.Clone(tenant.Features)
	c.items[key] = cacheItem{
		tenant:    stored,
		expiresAt: time.Now().Add(ttl),
	}

	c.updateLRU(key)
}

func (c *inMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	c.removeLRU(key)
}

// cleanup periodically removes expired items.
func (c *inMemoryCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *inMemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
			c.removeLRU(key)
		}
	}
}

func (c *inMemoryCache) updateLRU(key string) {
	for i, k := range c.lru {
		if k == key {
			c.lru = append(c.lru[:i], c.lru[i+1:]...)
			break
		}
	}
	c.lru = append(c.lru, key)
}

func (c *inMemoryCache) removeLRU(key string) {
	for i, k := range c.lru {
		if k == key {
			c.lru = append(c.lru[:i], c.lru[i+1:]...)
			return
		}
	}
}

func (c *inMemoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

// noOpCache is a cache that doesn't cache anything.
// Useful for testing or when caching should be disabled.
type noOpCache struct{}

// NewNoOpCache creates a cache that doesn't cache.
func NewNoOpCache() Cache {
	return &noOpCache{}
}

func (n *noOpCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	return nil, false
}

func (n *noOpCache) Set(ctx context.Context, key string, tenant *Tenant, ttl time.Duration) {
}

func (n *noOpCache) Delete(ctx context.Context, key string) {
}

func (n *noOpCache) Close() error {
	return nil
}
