package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache contract used by repositories.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get unmarshals the cached value for key into dest.
	// found=false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
