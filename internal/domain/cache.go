package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error of the cache port.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss reports that a key holds no value.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache stores string payloads for analysis results and dashboard
// aggregates. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss for an absent key.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key; a zero ttl keeps it until deleted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix drops every key starting with prefix, e.g. all
	// dashboard aggregates after a new submission.
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}
