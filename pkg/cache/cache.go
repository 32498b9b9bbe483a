// Package cache stores word lists fetched from slow or rate-limited sources.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several servers
//   - [NullCache]: stores nothing, used with --no-cache
//
// All backends implement [Cache]. Entries carry an optional TTL; a zero TTL
// never expires.
//
// # Keys
//
// Use [Key] to build namespaced keys from structured parts:
//
//	key := cache.Key("words", "gemini-2.5-flash", "space", 30)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
