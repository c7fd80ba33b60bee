package equities

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/health"
	"marketdata-service/internal/infrastructure/logx"
	"marketdata-service/internal/infrastructure/normalize"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultPeriod   = "1mo"
	DefaultInterval = "1d"
	DefaultTopLimit = 50
	DefaultBatch    = 5
	searchCap       = 10
	moversPerSide   = 5
	refreshTimeout  = 30 * time.Second
)

type TTLs struct {
	Quote    time.Duration
	History  time.Duration
	Search   time.Duration
	Fallback time.Duration
}

var DefaultTTLs = TTLs{
	Quote:    60 * time.Second,
	History:  300 * time.Second,
	Search:   600 * time.Second,
	Fallback: 300 * time.Second,
}

// Client serves one equity asset class. Top listings go through the health
// controller: a batch with too many failed symbols puts the client in
// degraded mode, and while degraded listings are built from static data
// without calling the upstream.
type Client struct {
	up      Upstream
	cache   *cache.Loader
	profile Profile
	health  *health.Controller
	ttl     TTLs
	batch   int
	clock   application.Clock
	log     *zap.Logger

	refreshes singleflight.Group
	wg        sync.WaitGroup
}

var (
	_ application.StockMarket = (*Client)(nil)
	_ application.ETFMarket   = (*Client)(nil)
)

type Option func(*Client)

func WithClock(c application.Clock) Option { return func(cl *Client) { cl.clock = c } }
func WithLogger(l *zap.Logger) Option { return func(cl *Client) { cl.log = l } }
func WithTTLs(t TTLs) Option { return func(cl *Client) { cl.ttl = t } }
func WithHealth(h *health.Controller) Option { return func(cl *Client) { cl.health = h } }

// WithBatchSize bounds how many upstream requests a listing keeps in flight.
func WithBatchSize(n int) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.batch = n
		}
	}
}

func New(up Upstream, loader *cache.Loader, p Profile, opts ...Option) *Client {
	c := &Client{up: up, cache: loader, profile: p, ttl: DefaultTTLs, batch: DefaultBatch}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = application.RealClock{}
	}
	c.log = logx.OrNop(c.log)
	if c.health == nil {
		c.health = health.New(string(p.Type), health.WithClock(c.clock), health.WithLogger(c.log))
	}
	c.log = c.log.With(zap.String("provider", "yahoo"), zap.String("asset_type", string(p.Type)))
	return c
}

func (c *Client) key(parts ...string) string {
	return string(c.profile.Type) + ":" + strings.Join(parts, ":")
}

// Quote returns a live quote, or the static entry for the symbol when the
// upstream fails.
func (c *Client) Quote(ctx context.Context, symbol string) (domain.AssetQuote, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.AssetQuote{}, err
	}
	if fb, ok := cache.Load[domain.AssetQuote](ctx, c.cache.Store(), c.key("quote", "fallback", sym)); ok {
		return fb, nil
	}
	q, err := c.live(ctx, sym)
	if err == nil {
		return q, nil
	}
	if fb, ok := c.substitute(ctx, sym, err); ok {
		return fb, nil
	}
	return domain.AssetQuote{}, err
}

// live is a cached upstream quote without any fallback.
func (c *Client) live(ctx context.Context, sym string) (domain.AssetQuote, error) {
	return cache.GetOrLoad(ctx, c.cache, c.key("quote", sym), c.ttl.Quote, func(ctx context.Context) (domain.AssetQuote, error) {
		y, err := c.up.Quote(ctx, sym)
		if err != nil {
			return domain.AssetQuote{}, err
		}
		return normalize.YahooQuote(y, c.profile.Type, c.clock.Now())
	})
}

// substitute serves the static entry for sym when err is an upstream
// failure. The entry is cached apart from live quotes, with the fallback TTL,
// so batched fetches never mistake it for an upstream success.
func (c *Client) substitute(ctx context.Context, sym string, err error) (domain.AssetQuote, bool) {
	if !domain.IsUpstreamFailure(err) {
		return domain.AssetQuote{}, false
	}
	fb, ok := c.profile.Fallback.Lookup(sym, c.clock.Now())
	if !ok {
		return domain.AssetQuote{}, false
	}
	c.log.Warn("quote served from fallback", zap.String("symbol", sym), zap.Error(err))
	cache.Save(ctx, c.cache.Store(), c.key("quote", "fallback", sym), fb, c.ttl.Fallback)
	return fb, true
}

func (c *Client) History(ctx context.Context, symbol, period, interval string) ([]domain.HistoryPoint, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = DefaultPeriod
	}
	if interval == "" {
		interval = DefaultInterval
	}
	return cache.GetOrLoad(ctx, c.cache, c.key("history", sym, period, interval), c.ttl.History, func(ctx context.Context) ([]domain.HistoryPoint, error) {
		to := c.clock.Now()
		from := to.AddDate(0, 0, -PeriodDays(period))
		r, err := c.up.Chart(ctx, sym, from, to, interval)
		if err != nil {
			return nil, err
		}
		return normalize.YahooChart(r), nil
	})
}

// Search keeps upstream matches of this client's asset class.
func (c *Client) Search(ctx context.Context, q string) ([]domain.SearchResult, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return []domain.SearchResult{}, nil
	}
	return cache.GetOrLoad(ctx, c.cache, c.key("search", strings.ToLower(term)), c.ttl.Search, func(ctx context.Context) ([]domain.SearchResult, error) {
		res, err := c.up.Search(ctx, term)
		if err != nil {
			return nil, err
		}
		out := make([]domain.SearchResult, 0, searchCap)
		for _, r := range res {
			if r.QuoteType != c.profile.QuoteType {
				continue
			}
			out = append(out, normalize.YahooSearch(r, c.profile.Type))
			if len(out) == searchCap {
				break
			}
		}
		return out, nil
	})
}

// Holdings returns the top holdings, sector weights and fund profile.
func (c *Client) Holdings(ctx context.Context, symbol string) (domain.FundHoldings, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.FundHoldings{}, err
	}
	return cache.GetOrLoad(ctx, c.cache, c.key("holdings", sym), c.ttl.History, func(ctx context.Context) (domain.FundHoldings, error) {
		s, err := c.up.QuoteSummary(ctx, sym, "topHoldings", "fundProfile")
		if err != nil {
			return domain.FundHoldings{}, err
		}
		return normalize.YahooHoldings(sym, s, c.clock.Now()), nil
	})
}

// Batch quotes every symbol concurrently with per-symbol fallback.
func (c *Client) Batch(ctx context.Context, symbols []string) []domain.PortfolioEntry {
	out := make([]domain.PortfolioEntry, len(symbols))
	var wg sync.WaitGroup
	for i, s := range symbols {
		i, s := i, s
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = domain.PortfolioEntry{Symbol: s, Type: string(c.profile.Type)}
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

// Movers ranks a fixed set of large caps by the size of their move.
func (c *Client) Movers(ctx context.Context) (domain.Movers, error) {
	if c.health.Degraded() {
		return rankMovers(c.staticQuotes(moverSymbols)), nil
	}
	return cache.GetOrLoad(ctx, c.cache, c.key("movers"), c.ttl.Quote, func(ctx context.Context) (domain.Movers, error) {
		qs, _, err := c.fetchBatched(ctx, moverSymbols)
		if err != nil {
			return domain.Movers{}, err
		}
		return rankMovers(qs), nil
	})
}

func rankMovers(qs []domain.AssetQuote) domain.Movers {
	sort.SliceStable(qs, func(i, j int) bool { return abs(qs[i].ChangePercent) > abs(qs[j].ChangePercent) })
	m := domain.Movers{Gainers: []domain.AssetQuote{}, Losers: []domain.AssetQuote{}}
	for _, q := range qs {
		switch {
		case q.ChangePercent > 0 && len(m.Gainers) < moversPerSide:
			m.Gainers = append(m.Gainers, q)
		case q.ChangePercent < 0 && len(m.Losers) < moversPerSide:
			m.Losers = append(m.Losers, q)
		}
	}
	return m
}

// Popular quotes a fixed set of widely held funds. While degraded the static
// list is served uncached, so the first call after the cooldown goes live.
func (c *Client) Popular(ctx context.Context) ([]domain.AssetQuote, error) {
	if c.health.Degraded() {
		return c.staticQuotes(popularSymbols), nil
	}
	return cache.GetOrLoad(ctx, c.cache, c.key("popular"), c.ttl.Quote, func(ctx context.Context) ([]domain.AssetQuote, error) {
		qs, _, err := c.fetchBatched(ctx, popularSymbols)
		return qs, err
	})
}

// cappedTTL shortens ttl to the cooldown left while degraded, so nothing
// cached during the cooldown outlives it.
func (c *Client) cappedTTL(ttl time.Duration) time.Duration {
	if left := c.health.Remaining(); left > 0 && left < ttl {
		return left
	}
	return ttl
}

func (c *Client) staticQuotes(symbols []string) []domain.AssetQuote {
	now := c.clock.Now()
	out := make([]domain.AssetQuote, 0, len(symbols))
	for _, s := range symbols {
		if q, ok := c.profile.Fallback.Lookup(s, now); ok {
			out = append(out, q)
		}
	}
	return out
}

func (c *Client) Health() domain.ProviderHealth { return c.health.Snapshot() }

// Wait blocks until background refreshes have finished.
func (c *Client) Wait() { c.wg.Wait() }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
