package crypto

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/fallback"
	"marketdata-service/internal/infrastructure/logx"
	"marketdata-service/internal/infrastructure/normalize"

	"go.uber.org/zap"
)

const (
	DefaultInterval     = "1d"
	DefaultHistoryLimit = 30
	DefaultTopLimit     = 50
	DefaultTrending     = 10
	searchCap           = 10
)

type TTLs struct {
	Quote    time.Duration
	History  time.Duration
	Search   time.Duration
	Fallback time.Duration
}

var DefaultTTLs = TTLs{
	Quote:    30 * time.Second,
	History:  300 * time.Second,
	Search:   600 * time.Second,
	Fallback: 300 * time.Second,
}

// Client serves crypto market data from the exchange, with the static
// dataset standing in for quotes and rankings when the exchange fails.
type Client struct {
	up    Upstream
	cache *cache.Loader
	ttl   TTLs
	clock application.Clock
	log   *zap.Logger
}

var _ application.CryptoMarket = (*Client)(nil)

type Option func(*Client)

func WithClock(c application.Clock) Option { return func(cl *Client) { cl.clock = c } }
func WithLogger(l *zap.Logger) Option { return func(cl *Client) { cl.log = l } }
func WithTTLs(t TTLs) Option { return func(cl *Client) { cl.ttl = t } }

func New(up Upstream, loader *cache.Loader, opts ...Option) *Client {
	c := &Client{up: up, cache: loader, ttl: DefaultTTLs}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = application.RealClock{}
	}
	c.log = logx.OrNop(c.log).With(zap.String("provider", "binance"))
	return c
}

// Quote returns the 24 hour ticker for a symbol; BTC and BTCUSDT are the
// same instrument.
func (c *Client) Quote(ctx context.Context, symbol string) (domain.AssetQuote, error) {
	pair, err := domain.CryptoPair(symbol)
	if err != nil {
		return domain.AssetQuote{}, err
	}
	key := "crypto:price:" + pair
	q, err := cache.GetOrLoad(ctx, c.cache, key, c.ttl.Quote, func(ctx context.Context) (domain.AssetQuote, error) {
		t, err := c.up.Ticker(ctx, pair)
		if err != nil {
			return domain.AssetQuote{}, err
		}
		return normalize.BinanceTicker(t, c.clock.Now())
	})
	if err == nil {
		return q, nil
	}
	if !domain.IsUpstreamFailure(err) {
		return domain.AssetQuote{}, err
	}
	fb, ok := fallback.Crypto().Lookup(pair, c.clock.Now())
	if !ok {
		return domain.AssetQuote{}, err
	}
	c.log.Warn("quote served from fallback", zap.String("symbol", pair), zap.Error(err))
	cache.Save(ctx, c.cache.Store(), key, fb, c.ttl.Fallback)
	return fb, nil
}

func (c *Client) History(ctx context.Context, symbol, interval string, limit int) ([]domain.HistoryPoint, error) {
	pair, err := domain.CryptoPair(symbol)
	if err != nil {
		return nil, err
	}
	if interval == "" {
		interval = DefaultInterval
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	key := fmt.Sprintf("crypto:history:%s:%s:%d", pair, interval, limit)
	return cache.GetOrLoad(ctx, c.cache, key, c.ttl.History, func(ctx context.Context) ([]domain.HistoryPoint, error) {
		ks, err := c.up.Klines(ctx, pair, interval, limit)
		if err != nil {
			return nil, err
		}
		return normalize.BinanceKlines(ks)
	})
}

// Search matches USDT pairs whose base asset or symbol contains q.
func (c *Client) Search(ctx context.Context, q string) ([]domain.SearchResult, error) {
	term := strings.ToUpper(strings.TrimSpace(q))
	if term == "" {
		return []domain.SearchResult{}, nil
	}
	return cache.GetOrLoad(ctx, c.cache, "crypto:search:"+term, c.ttl.Search, func(ctx context.Context) ([]domain.SearchResult, error) {
		info, err := c.up.ExchangeInfo(ctx, "")
		if err != nil {
			return nil, err
		}
		out := make([]domain.SearchResult, 0, searchCap)
		for _, s := range info.Symbols {
			if s.QuoteAsset != domain.CryptoQuoteAsset {
				continue
			}
			if !strings.Contains(s.BaseAsset, term) && !strings.Contains(s.Symbol, term) {
				continue
			}
			out = append(out, normalize.BinanceSymbol(s))
			if len(out) == searchCap {
				break
			}
		}
		return out, nil
	})
}

// Top ranks USDT pairs by quote volume. It never returns an empty list for
// an upstream failure: the static dataset is served instead.
func (c *Client) Top(ctx context.Context, limit int) ([]domain.AssetQuote, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	key := "crypto:top:" + strconv.Itoa(limit)
	qs, err := cache.GetOrLoad(ctx, c.cache, key, c.ttl.Search, func(ctx context.Context) ([]domain.AssetQuote, error) {
		all, err := c.usdtTickers(ctx)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(all, func(i, j int) bool { return volumeOf(all[i]) > volumeOf(all[j]) })
		return all[:min(limit, len(all))], nil
	})
	if err == nil {
		return qs, nil
	}
	if !domain.IsUpstreamFailure(err) {
		return nil, err
	}
	c.log.Warn("top list served from fallback", zap.Int("limit", limit), zap.Error(err))
	fb := fallback.Crypto().Top(limit, c.clock.Now())
	cache.Save(ctx, c.cache.Store(), key, fb, c.ttl.Fallback)
	return fb, nil
}

// Trending returns the strongest and weakest USDT pairs by 24 hour change.
func (c *Client) Trending(ctx context.Context, limit int) (domain.Movers, error) {
	if limit <= 0 {
		limit = DefaultTrending
	}
	key := "crypto:trending:" + strconv.Itoa(limit)
	m, err := cache.GetOrLoad(ctx, c.cache, key, c.ttl.Search, func(ctx context.Context) (domain.Movers, error) {
		all, err := c.usdtTickers(ctx)
		if err != nil {
			return domain.Movers{}, err
		}
		return rank(all, limit), nil
	})
	if err == nil {
		return m, nil
	}
	if !domain.IsUpstreamFailure(err) {
		return domain.Movers{}, err
	}
	c.log.Warn("trending served from fallback", zap.Error(err))
	m = rank(fallback.Crypto().Top(0, c.clock.Now()), limit)
	cache.Save(ctx, c.cache.Store(), key, m, c.ttl.Fallback)
	return m, nil
}

func (c *Client) Instrument(ctx context.Context, symbol string) (domain.Instrument, error) {
	pair, err := domain.CryptoPair(symbol)
	if err != nil {
		return domain.Instrument{}, err
	}
	return cache.GetOrLoad(ctx, c.cache, "crypto:info:"+pair, c.ttl.Search, func(ctx context.Context) (domain.Instrument, error) {
		info, err := c.up.ExchangeInfo(ctx, pair)
		if err != nil {
			return domain.Instrument{}, err
		}
		if len(info.Symbols) == 0 {
			return domain.Instrument{}, fmt.Errorf("instrument %s: %w", pair, domain.ErrNotFound)
		}
		return normalize.BinanceInstrument(info.Symbols[0]), nil
	})
}

// Batch quotes every symbol concurrently; a failing symbol yields an error
// entry and does not affect the others.
func (c *Client) Batch(ctx context.Context, symbols []string) []domain.PortfolioEntry {
	out := make([]domain.PortfolioEntry, len(symbols))
	var wg sync.WaitGroup
	for i, s := range symbols {
		i, s := i, s
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = domain.PortfolioEntry{Symbol: s, Type: string(domain.AssetCrypto)}
			q, err := c.Quote(ctx, s)
			if err != nil {
				out[i].Err = err.Error()
				return
			}
			out[i].Quote = &q
		}()
	}
	wg.Wait()
	return out
}

func (c *Client) usdtTickers(ctx context.Context) ([]domain.AssetQuote, error) {
	ts, err := c.up.Tickers(ctx)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()
	out := make([]domain.AssetQuote, 0, len(ts))
	for _, t := range ts {
		if !strings.HasSuffix(t.Symbol, domain.CryptoQuoteAsset) {
			continue
		}
		q, err := normalize.BinanceTicker(t, now)
		if err != nil {
			c.log.Debug("skipping ticker", zap.String("symbol", t.Symbol), zap.Error(err))
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func volumeOf(q domain.AssetQuote) float64 {
	if q.QuoteVolume == nil {
		return 0
	}
	return *q.QuoteVolume
}

func rank(qs []domain.AssetQuote, limit int) domain.Movers {
	byChange := make([]domain.AssetQuote, len(qs))
	copy(byChange, qs)
	sort.SliceStable(byChange, func(i, j int) bool { return byChange[i].ChangePercent > byChange[j].ChangePercent })
	n := min(limit, len(byChange))
	gainers := make([]domain.AssetQuote, n)
	copy(gainers, byChange[:n])
	losers := make([]domain.AssetQuote, 0, n)
	for i := len(byChange) - 1; i >= len(byChange)-n; i-- {
		losers = append(losers, byChange[i])
	}
	return domain.Movers{Gainers: gainers, Losers: losers}
}
