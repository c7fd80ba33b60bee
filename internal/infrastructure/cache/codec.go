package cache

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Load decodes the value stored under key. An entry that no longer decodes
// into T is dropped and reported as a miss.
func Load[T any](ctx context.Context, s Store, key string) (T, bool) {
	var v T
	b, ok := s.Get(ctx, key)
	if !ok {
		return v, false
	}
	if err := msgpack.Unmarshal(b, &v); err != nil {
		s.Del(ctx, key)
		var zero T
		return zero, false
	}
	return v, true
}

// Save encodes v and stores it under key. Values that fail to encode are
// not cached.
func Save[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return
	}
	s.Set(ctx, key, b, ttl)
}
