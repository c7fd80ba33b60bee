package cache

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"marketdata-service/internal/application"
)

// DefaultCheckPeriod is how often MemoryStore.Run sweeps expired entries.
const DefaultCheckPeriod = 2 * time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps entries in process memory. Expired entries read as
// misses immediately and are removed on read or by the periodic sweep.
type MemoryStore struct {
	defaultTTL  time.Duration
	checkPeriod time.Duration
	clock       application.Clock

	mu    sync.RWMutex
	items map[string]entry

	hits   atomic.Int64
	misses atomic.Int64
}

var (
	_ Store     = (*MemoryStore)(nil)
	_ Inspector = (*MemoryStore)(nil)
)

type MemoryOption func(*MemoryStore)

func WithClock(c application.Clock) MemoryOption { return func(s *MemoryStore) { s.clock = c } }

func WithCheckPeriod(d time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.checkPeriod = d }
}

func NewMemory(defaultTTL time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		defaultTTL:  defaultTTL,
		checkPeriod: DefaultCheckPeriod,
		items:       make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaultTTL <= 0 {
		s.defaultTTL = DefaultTTL
	}
	if s.checkPeriod <= 0 {
		s.checkPeriod = DefaultCheckPeriod
	}
	if s.clock == nil {
		s.clock = application.RealClock{}
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	now := s.clock.Now()
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	if !now.Before(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.items[key]; ok && !now.Before(cur.expiresAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.value, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	e := entry{value: bytes.Clone(value), expiresAt: s.clock.Now().Add(ttl)}
	s.mu.Lock()
	s.items[key] = e
	s.mu.Unlock()
}

func (s *MemoryStore) Del(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

func (s *MemoryStore) Flush(_ context.Context) {
	s.mu.Lock()
	s.items = make(map[string]entry)
	s.mu.Unlock()
	s.hits.Store(0)
	s.misses.Store(0)
}

func (s *MemoryStore) Has(_ context.Context, key string) bool {
	now := s.clock.Now()
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	return ok && now.Before(e.expiresAt)
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, e := range s.items {
		if !now.Before(e.expiresAt) {
			delete(s.items, k)
			n++
		}
	}
	return n
}

// Run sweeps every check period until ctx is canceled.
func (s *MemoryStore) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *MemoryStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	keys := len(s.items)
	s.mu.RUnlock()
	return Stats{Backend: "memory", Keys: int64(keys), Hits: s.hits.Load(), Misses: s.misses.Load()}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
