// Package cache stores computed hints and layouts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [NullCache]: never stores anything (--no-cache)
//   - [RedisCache]: shared cache for multi-process use
//   - [MongoCache]: shared cache with a TTL index
//
// [Open] builds a backend from a [Config]. Keys come from a [Keyer], which
// derives them from the canonical pedigree hash and the options that
// influence the cached value.
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default time-to-live values per entry kind.
const (
	TTLHints  = 30 * 24 * time.Hour
	TTLLayout = 7 * 24 * time.Hour
)
