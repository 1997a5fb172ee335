// Package cache provides artifact caching for the preview server.
//
// Rendered icons are cheap but not free, and the server may replay the
// same parameter set many times (a favicon URL is fetched on every page
// load). The Cache interface abstracts the storage backend:
//   - FileCache: directory of JSON entry files for single-host setups
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: disables caching
//
// Keys are derived from the rendered parameters with [Key], a sha256
// content hash, so any parameter change misses cleanly.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by parameter hash.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given TTL. A zero TTL means no
	// expiry; a negative TTL leaves the key unretrievable.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Scoped wraps a cache with a key prefix, isolating namespaces (for
// example one per output format) on a shared backend.
func Scoped(inner Cache, prefix string) Cache {
	return &scopedCache{inner: inner, prefix: prefix}
}

type scopedCache struct {
	inner  Cache
	prefix string
}

func (c *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

func (c *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

func (c *scopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close is a no-op: the owner of the underlying cache closes it.
func (c *scopedCache) Close() error { return nil }
