package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader fills the cache on miss. Concurrent misses on the same key share a
// single call to load.
type Loader struct {
	store Store
	group singleflight.Group
}

func NewLoader(s Store) *Loader { return &Loader{store: s} }

func (l *Loader) Store() Store { return l.store }

// GetOrLoad returns the cached value for key, or calls load and caches its
// result for ttl. Errors are not cached.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if v, ok := Load[T](ctx, l.store, key); ok {
		return v, nil
	}
	res, err, _ := l.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		Save(ctx, l.store, key, v, ttl)
		return v, nil
	})
	v, _ := res.(T)
	return v, err
}
