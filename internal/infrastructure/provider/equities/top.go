package equities

import (
	"context"
	"strconv"
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"

	"go.uber.org/zap"
)

// Top lists the leading symbols of the asset class and never returns an
// empty list. In async mode the static list is returned at once and a
// background refresh replaces the cached entry with live quotes.
func (c *Client) Top(ctx context.Context, limit int) ([]domain.AssetQuote, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	key := c.key("top", strconv.Itoa(limit))
	if qs, ok := cache.Load[[]domain.AssetQuote](ctx, c.cache.Store(), key); ok {
		return qs, nil
	}

	if c.health.Degraded() {
		return c.fallbackTop(ctx, key, limit), nil
	}

	if c.profile.AsyncTop {
		fb := c.profile.Fallback.Top(limit, c.clock.Now())
		cache.Save(ctx, c.cache.Store(), key, fb, c.ttl.Quote)
		c.refresh(key, limit)
		return fb, nil
	}

	syms := c.candidates(limit)
	qs, failures, err := c.fetchBatched(ctx, syms)
	if err != nil || failures == len(syms) {
		c.log.Warn("top list served from fallback", zap.Int("failed", failures), zap.Error(err))
		return c.fallbackTop(ctx, key, limit), nil
	}
	cache.Save(ctx, c.cache.Store(), key, qs, c.cappedTTL(c.ttl.Quote))
	return qs, nil
}

func (c *Client) fallbackTop(ctx context.Context, key string, limit int) []domain.AssetQuote {
	fb := c.profile.Fallback.Top(limit, c.clock.Now())
	cache.Save(ctx, c.cache.Store(), key, fb, c.cappedTTL(c.ttl.Fallback))
	return fb
}

func (c *Client) candidates(limit int) []string {
	syms := c.profile.Fallback.Symbols()
	return syms[:min(limit, c.profile.Candidates, len(syms))]
}

// refresh spawns a detached fetch of the top list. Concurrent refreshes of
// the same key share one fetch. Failures are logged and never reach the
// caller, which already holds the static list.
func (c *Client) refresh(key string, limit int) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_, _, _ = c.refreshes.Do(key, func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()

			syms := c.candidates(limit)
			qs, failures, err := c.fetchBatched(ctx, syms)
			if err != nil {
				c.log.Info("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, nil
			}
			if failures == len(syms) {
				c.log.Info("background refresh got no live quotes", zap.String("key", key))
				return nil, nil
			}
			cache.Save(ctx, c.cache.Store(), key, qs, c.cappedTTL(c.ttl.Quote))
			c.log.Info("background refresh stored live quotes",
				zap.String("key", key), zap.Int("count", len(qs)), zap.Int("failed", failures))
			return nil, nil
		})
	}()
}

// fetchBatched quotes symbols in sequential batches, each batch in parallel,
// pausing between batches. Only upstream answers count as successes. A failed
// symbol is replaced by its static entry, or dropped when there is none. The
// failure count is reported to the health controller.
func (c *Client) fetchBatched(ctx context.Context, symbols []string) ([]domain.AssetQuote, int, error) {
	out := make([]domain.AssetQuote, 0, len(symbols))
	failures := 0
	for start := 0; start < len(symbols); start += c.batch {
		if start > 0 {
			if err := sleep(ctx, c.profile.BatchDelay); err != nil {
				return nil, failures, err
			}
		}
		batch := symbols[start:min(start+c.batch, len(symbols))]
		quotes := make([]domain.AssetQuote, len(batch))
		errs := make([]error, len(batch))
		done := make(chan struct{}, len(batch))
		for i, sym := range batch {
			i, sym := i, sym
			go func() {
				defer func() { done <- struct{}{} }()
				quotes[i], errs[i] = c.live(ctx, sym)
			}()
		}
		for range batch {
			<-done
		}
		now := c.clock.Now()
		for i, sym := range batch {
			if errs[i] == nil && quotes[i].Source != domain.SourceFallback {
				out = append(out, quotes[i])
				continue
			}
			failures++
			c.log.Debug("batch quote failed", zap.String("symbol", sym), zap.Error(errs[i]))
			if fb, ok := c.profile.Fallback.Lookup(sym, now); ok {
				out = append(out, fb)
			}
		}
	}
	c.health.Observe(failures, len(symbols))
	return out, failures, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
