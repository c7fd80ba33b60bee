package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore shares the cache between replicas. Keys are namespaced by
// Prefix so Flush only touches this service's entries.
type RedisStore struct {
	Client     *redis.Client
	Prefix     string
	DefaultTTL time.Duration
	Log        *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

var (
	_ Store     = (*RedisStore)(nil)
	_ Inspector = (*RedisStore)(nil)
)

func NewRedis(client *redis.Client, prefix string, defaultTTL time.Duration, log *zap.Logger) *RedisStore {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{Client: client, Prefix: prefix, DefaultTTL: defaultTTL, Log: log}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.Client.Get(ctx, s.Prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.Log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return b, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.DefaultTTL
	}
	if err := s.Client.Set(ctx, s.Prefix+key, value, ttl).Err(); err != nil {
		s.Log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisStore) Del(ctx context.Context, key string) {
	if err := s.Client.Del(ctx, s.Prefix+key).Err(); err != nil {
		s.Log.Warn("cache del failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisStore) Flush(ctx context.Context) {
	keys, err := s.keys(ctx)
	if err != nil {
		s.Log.Warn("cache flush scan failed", zap.Error(err))
	}
	for start := 0; start < len(keys); start += 500 {
		end := min(start+500, len(keys))
		if err := s.Client.Del(ctx, keys[start:end]...).Err(); err != nil {
			s.Log.Warn("cache flush failed", zap.Error(err))
			return
		}
	}
	s.hits.Store(0)
	s.misses.Store(0)
}

func (s *RedisStore) Has(ctx context.Context, key string) bool {
	n, err := s.Client.Exists(ctx, s.Prefix+key).Result()
	if err != nil {
		s.Log.Warn("cache exists failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return n > 0
}

func (s *RedisStore) Stats(ctx context.Context) Stats {
	st := Stats{Backend: "redis", Hits: s.hits.Load(), Misses: s.misses.Load()}
	keys, err := s.keys(ctx)
	if err == nil {
		st.Keys = int64(len(keys))
	}
	return st
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.Client.Scan(ctx, 0, s.Prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
