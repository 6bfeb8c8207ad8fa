package scraper

import (
	"strings"
	"sync"
	"time"

	"github.com/Tanvi150423/voguefit/internal/model"
)

// cacheEntry holds one cached product list with its expiry
type cacheEntry struct {
	products   []model.Product
	expiration time.Time
}

// ProductCache is a thread-safe in-memory cache for fetched product lists.
// Entries expire after the configured TTL; a janitor goroutine sweeps
// expired entries periodically, and reads check expiry lazily so a stale
// entry never leaks out between sweeps.
type ProductCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

// NewProductCache creates a cache and starts its janitor
func NewProductCache(ttl, sweepPeriod time.Duration) *ProductCache {
	c := &ProductCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.janitor(sweepPeriod)
	return c
}

// CacheKey builds the canonical cache key for a platform+query pair
func CacheKey(platform, query string) string {
	return strings.ToLower(platform) + "_" + strings.ToLower(query)
}

// Get returns the cached products for key, or nil, false on miss or expiry
func (c *ProductCache) Get(key string) ([]model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiration) {
		return nil, false
	}
	return entry.products, true
}

// Set stores products under key with the cache TTL
func (c *ProductCache) Set(key string, products []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheEntry{
		products:   products,
		expiration: time.Now().Add(c.ttl),
	}
}

// Clear drops all entries
func (c *ProductCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]cacheEntry)
}

// Len returns the number of entries, expired ones included
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Stop terminates the janitor goroutine
func (c *ProductCache) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// janitor removes expired entries every sweepPeriod
func (c *ProductCache) janitor(sweepPeriod time.Duration) {
	ticker := time.NewTicker(sweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.data {
				if now.After(entry.expiration) {
					delete(c.data, key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}
