// Package cache stores rendered diagrams between CLI runs.
//
// Rendering through Graphviz is the slowest step of the render command, and
// the same document is often rendered repeatedly while it is being edited.
// Entries are keyed by a hash of the document bytes plus the render options
// (see [RenderKey]), so any edit naturally misses.
//
// Implementations:
//   - [FileCache]: one JSON file per entry under a cache directory
//   - [RedisCache]: a shared Redis database, for serve deployments
//   - [NullCache]: stores nothing, used with --no-cache
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the entry for key and whether it was found.
	// Expired or unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
