package cache

import (
	"context"
	"time"
)

// DefaultTTL applies when Set is called with a non-positive ttl.
const DefaultTTL = 60 * time.Second

// Store is a byte-oriented key/value cache with per-entry expiry.
// Operations never fail; backend problems surface as misses.
// Callers must not modify slices returned by Get.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Del(ctx context.Context, key string)
	Flush(ctx context.Context)
	Has(ctx context.Context, key string) bool
}

// Inspector is implemented by stores that can report on themselves.
type Inspector interface {
	Stats(ctx context.Context) Stats
	Ping(ctx context.Context) error
}

type Stats struct {
	Backend string `json:"backend"`
	Keys    int64  `json:"keys"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
}
