package cache

import (
	"context"
	"time"
)

// Cache is a byte-value cache with per-key TTL. Implementations: in-process
// memory cache and redis. Cached reads are display-path only; the purchase
// path always reads the authoritative database.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

type CacheError string

func (e CacheError) Error() string { return string(e) }

const ErrCacheMiss CacheError = "cache miss"
