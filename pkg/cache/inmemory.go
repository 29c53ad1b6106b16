package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	Delete(key string)
	Flush()
}

type inmemoryCache struct {
	internal *gocache.Cache
}

// New returns an in-memory Cache with the given default expiration and cleanup interval.
func New(defaultExpiration, cleanupInterval time.Duration) Cache {
	return &inmemoryCache{
		internal: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *inmemoryCache) Set(key string, value interface{}, duration time.Duration) {
	c.internal.Set(key, value, duration)
}

func (c *inmemoryCache) Get(key string) (interface{}, bool) {
	return c.internal.Get(key)
}

func (c *inmemoryCache) Delete(key string) {
	c.internal.Delete(key)
}

func (c *inmemoryCache) Flush() {
	c.internal.Flush()
}

// TypedGet retrieves a value and asserts it to T; a miss or type mismatch returns false.
func TypedGet[T any](c Cache, key string) (T, bool) {
	val, found := c.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	typedVal, ok := val.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return typedVal, true
}
