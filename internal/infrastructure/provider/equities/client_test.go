package equities_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/health"
	"marketdata-service/internal/infrastructure/provider/equities"
	"marketdata-service/internal/infrastructure/yahoo"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var unavailable = &domain.UpstreamError{Provider: "yahoo", Kind: domain.ErrUpstreamUnavailable}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	client *equities.Client
	up     *MockUpstream
	store  *cache.MemoryStore
	clock  *fakeClock
}

func newFixture(t *testing.T, p equities.Profile) fixture {
	t.Helper()
	p.BatchDelay = 0
	ctrl := gomock.NewController(t)
	up := NewMockUpstream(ctrl)
	clk := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := cache.NewMemory(time.Minute, cache.WithClock(clk))
	h := health.New(string(p.Type), health.WithClock(clk), health.WithCooldown(10*time.Minute))
	c := equities.New(up, cache.NewLoader(store), p, equities.WithClock(clk), equities.WithHealth(h))
	t.Cleanup(c.Wait)
	return fixture{client: c, up: up, store: store, clock: clk}
}

func f(v float64) *float64 { return &v }

func liveQuote(_ context.Context, sym string) (yahoo.Quote, error) {
	return yahoo.Quote{Symbol: sym, ShortName: sym, RegularMarketPrice: f(100), RegularMarketChangePercent: f(1)}, nil
}

func TestQuote_LiveIsCached(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Quote(gomock.Any(), "AAPL").DoAndReturn(liveQuote).Times(1)

	q, err := fx.client.Quote(context.Background(), "aapl")
	require.NoError(t, err)
	require.Equal(t, domain.SourceYahoo, q.Source)
	require.Equal(t, domain.AssetStock, q.Type)
	require.Nil(t, q.MarketCap)

	_, err = fx.client.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
}

func TestQuote_FallbackForStocksAndETFs(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		profile equities.Profile
		symbol  string
		price   float64
	}{
		{equities.Stocks(), "AAPL", 185.50},
		{equities.ETFs(), "SPY", 475.00},
	} {
		fx := newFixture(t, tc.profile)
		fx.up.EXPECT().Quote(gomock.Any(), tc.symbol).Return(yahoo.Quote{}, unavailable).Times(1)

		q, err := fx.client.Quote(context.Background(), tc.symbol)
		require.NoError(t, err)
		require.Equal(t, domain.SourceFallback, q.Source)
		require.InDelta(t, tc.price, q.Price, 1e-9)
		require.Equal(t, fx.clock.Now(), q.Timestamp)

		again, err := fx.client.Quote(context.Background(), tc.symbol)
		require.NoError(t, err)
		require.Equal(t, domain.SourceFallback, again.Source)
	}
}

func TestQuote_NoFallbackEntry(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Quote(gomock.Any(), "ZZZZ").Return(yahoo.Quote{}, unavailable)

	_, err := fx.client.Quote(context.Background(), "ZZZZ")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestHistory_PeriodWindow(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	now := fx.clock.Now()
	fx.up.EXPECT().
		Chart(gomock.Any(), "QQQ", now.AddDate(0, 0, -365), now, "1wk").
		Return(yahoo.ChartResult{}, nil).
		Times(1)
	fx.up.EXPECT().
		Chart(gomock.Any(), "QQQ", now.AddDate(0, 0, -30), now, "1d").
		Return(yahoo.ChartResult{}, nil).
		Times(1)

	pts, err := fx.client.History(context.Background(), "qqq", "1y", "1wk")
	require.NoError(t, err)
	require.Empty(t, pts)

	_, err = fx.client.History(context.Background(), "QQQ", "10y", "")
	require.NoError(t, err)
	_, err = fx.client.History(context.Background(), "QQQ", "10y", "1d")
	require.NoError(t, err)
}

func TestPeriodDays(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, equities.PeriodDays("1d"))
	require.Equal(t, 1825, equities.PeriodDays("5y"))
	require.Equal(t, 30, equities.PeriodDays("max"))
}

func TestSearch_FiltersByQuoteType(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Search(gomock.Any(), "apple").Return([]yahoo.SearchQuote{
		{Symbol: "AAPL", LongName: "Apple Inc.", Exchange: "NMS", QuoteType: "EQUITY"},
		{Symbol: "APLY", ShortName: "YieldMax AAPL", Exchange: "PCX", QuoteType: "ETF"},
	}, nil).Times(1)

	res, err := fx.client.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "AAPL", res[0].Symbol)
	require.Equal(t, domain.AssetStock, res[0].Type)

	_, err = fx.client.Search(context.Background(), "Apple")
	require.NoError(t, err)
}

func TestHoldings_CachedUnderETFKey(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	fx.up.EXPECT().QuoteSummary(gomock.Any(), "SPY", "topHoldings", "fundProfile").Return(yahoo.QuoteSummary{
		TopHoldings: &yahoo.TopHoldings{
			Holdings: []yahoo.Holding{{Symbol: "AAPL", HoldingName: "Apple Inc", HoldingPercent: yahoo.RawValue{Raw: f(0.07)}}},
		},
		FundProfile: &yahoo.FundProfile{CategoryName: "Large Blend", Family: "SPDR State Street Global Advisors"},
	}, nil).Times(1)

	h, err := fx.client.Holdings(context.Background(), "spy")
	require.NoError(t, err)
	require.Equal(t, "SPY", h.Symbol)
	require.Len(t, h.Holdings, 1)
	require.InDelta(t, 0.07, h.Holdings[0].Weight, 1e-9)
	require.Equal(t, "Large Blend", h.Category)
	require.True(t, fx.store.Has(context.Background(), "etf:holdings:SPY"))

	_, err = fx.client.Holdings(context.Background(), "SPY")
	require.NoError(t, err)
}

func TestHoldings_UpstreamErrorNotCached(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	fx.up.EXPECT().QuoteSummary(gomock.Any(), "VTI", "topHoldings", "fundProfile").Return(yahoo.QuoteSummary{}, unavailable).Times(1)

	_, err := fx.client.Holdings(context.Background(), "VTI")
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	require.False(t, fx.store.Has(context.Background(), "etf:holdings:VTI"))

	_, err = fx.client.Holdings(context.Background(), "")
	require.Error(t, err)
}

func TestTop_SyncDegradedTransition(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	ctx := context.Background()

	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(yahoo.Quote{}, unavailable).Times(25)
	qs, err := fx.client.Top(ctx, 50)
	require.NoError(t, err)
	require.Len(t, qs, 25)
	require.Equal(t, domain.SourceFallback, qs[0].Source)
	require.True(t, fx.client.Health().Degraded)
	require.Equal(t, fx.clock.Now().Add(10*time.Minute), *fx.client.Health().CooldownUntil)

	// Within the cooldown the upstream is not called at all.
	fx.clock.Advance(5 * time.Minute)
	qs, err = fx.client.Top(ctx, 50)
	require.NoError(t, err)
	require.Len(t, qs, 25)

	fx.clock.Advance(5 * time.Minute)
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(liveQuote).Times(25)
	qs, err = fx.client.Top(ctx, 50)
	require.NoError(t, err)
	require.Len(t, qs, 25)
	require.Equal(t, domain.SourceYahoo, qs[0].Source)
	require.False(t, fx.client.Health().Degraded)
}

func TestTop_ListCachedWhileDegradedExpiresWithCooldown(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	ctx := context.Background()

	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(yahoo.Quote{}, unavailable).Times(25)
	_, err := fx.client.Top(ctx, 25)
	require.NoError(t, err)
	require.True(t, fx.client.Health().Degraded)

	fx.clock.Advance(9*time.Minute + 59*time.Second)
	_, err = fx.client.Top(ctx, 25)
	require.NoError(t, err)

	fx.clock.Advance(2 * time.Second)
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(liveQuote).Times(25)
	qs, err := fx.client.Top(ctx, 25)
	require.NoError(t, err)
	require.Equal(t, domain.SourceYahoo, qs[0].Source)
}

func TestTop_CachedFallbackQuotesCountAsFailures(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	ctx := context.Background()
	syms := equities.ETFs().Fallback.Symbols()
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(yahoo.Quote{}, unavailable).Times(13 + len(syms))

	for _, sym := range syms[:13] {
		q, err := fx.client.Quote(ctx, sym)
		require.NoError(t, err)
		require.Equal(t, domain.SourceFallback, q.Source)
	}

	qs, err := fx.client.Top(ctx, 25)
	require.NoError(t, err)
	require.Len(t, qs, 25)
	require.True(t, fx.client.Health().Degraded)
}

func TestTop_AsyncRefreshSkipsAllFallbackResult(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	ctx := context.Background()
	syms := equities.Stocks().Fallback.Symbols()[:20]
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(yahoo.Quote{}, unavailable).Times(len(syms) * 2)

	for _, sym := range syms {
		_, err := fx.client.Quote(ctx, sym)
		require.NoError(t, err)
	}
	_, err := fx.client.Top(ctx, 20)
	require.NoError(t, err)
	fx.client.Wait()

	// Every refresh call reached the upstream and failed, so nothing live
	// was stored and the controller tripped.
	require.True(t, fx.client.Health().Degraded)
}

func TestTop_SyncPartialFailureSubstitutesPerSymbol(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sym string) (yahoo.Quote, error) {
		if sym == "SPY" || sym == "QQQ" {
			return yahoo.Quote{}, unavailable
		}
		return liveQuote(ctx, sym)
	}).Times(10)

	qs, err := fx.client.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, qs, 10)
	bySymbol := map[string]domain.AssetQuote{}
	for _, q := range qs {
		bySymbol[q.Symbol] = q
	}
	require.Equal(t, domain.SourceFallback, bySymbol["SPY"].Source)
	require.Equal(t, domain.SourceFallback, bySymbol["QQQ"].Source)
	require.Equal(t, domain.SourceYahoo, bySymbol["IWM"].Source)
	require.False(t, fx.client.Health().Degraded)
}

func TestTop_AsyncReturnsFallbackThenLive(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(liveQuote).Times(20)

	qs, err := fx.client.Top(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, qs, 50)
	for _, q := range qs {
		require.Equal(t, domain.SourceFallback, q.Source)
	}

	fx.client.Wait()
	qs, err = fx.client.Top(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, qs, 20)
	require.Equal(t, domain.SourceYahoo, qs[0].Source)
}

func TestTop_AsyncUnreachableUpstreamStaysOnFallback(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(yahoo.Quote{}, unavailable).Times(20)

	first, err := fx.client.Top(context.Background(), 30)
	require.NoError(t, err)
	fx.client.Wait()
	require.True(t, fx.client.Health().Degraded)

	second, err := fx.client.Top(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Symbol, second[i].Symbol)
		require.InDelta(t, first[i].Price, second[i].Price, 1e-9)
	}
}

func TestMovers_RankedByMoveSize(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	pct := map[string]float64{
		"AAPL": 1, "MSFT": -2, "GOOGL": 3, "AMZN": -4, "TSLA": 5,
		"META": -6, "NVDA": 7, "AMD": 0, "NFLX": 0.5, "DIS": -0.5,
	}
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sym string) (yahoo.Quote, error) {
		return yahoo.Quote{Symbol: sym, RegularMarketPrice: f(10), RegularMarketChangePercent: f(pct[sym])}, nil
	}).Times(10)

	m, err := fx.client.Movers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"NVDA", "TSLA", "GOOGL", "AAPL", "NFLX"}, symbols(m.Gainers))
	require.Equal(t, []string{"META", "AMZN", "MSFT", "DIS"}, symbols(m.Losers))
}

func TestPopular_DegradedSkipsUpstream(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	h := health.New("etf", health.WithClock(fx.clock))
	h.Observe(1, 1)
	c := equities.New(fx.up, cache.NewLoader(fx.store), equities.ETFs(), equities.WithClock(fx.clock), equities.WithHealth(h))

	qs, err := c.Popular(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, qs)
	require.Equal(t, "SPY", qs[0].Symbol)
	for _, q := range qs {
		require.Equal(t, domain.SourceFallback, q.Source)
	}
}

func TestPopular_LiveAgainOnceCooldownEnds(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.ETFs())
	h := health.New("etf", health.WithClock(fx.clock), health.WithCooldown(time.Minute))
	h.Observe(1, 1)
	p := equities.ETFs()
	p.BatchDelay = 0
	c := equities.New(fx.up, cache.NewLoader(fx.store), p, equities.WithClock(fx.clock), equities.WithHealth(h))
	t.Cleanup(c.Wait)

	_, err := c.Popular(context.Background())
	require.NoError(t, err)

	fx.clock.Advance(time.Minute)
	fx.up.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(liveQuote).Times(10)
	qs, err := c.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 10)
	require.Equal(t, domain.SourceYahoo, qs[0].Source)
}

func TestBatch_Isolated(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, equities.Stocks())
	fx.up.EXPECT().Quote(gomock.Any(), "MSFT").DoAndReturn(liveQuote)
	fx.up.EXPECT().Quote(gomock.Any(), "ZZZZ").Return(yahoo.Quote{}, unavailable)

	out := fx.client.Batch(context.Background(), []string{"MSFT", "ZZZZ", "bad symbol"})
	require.Len(t, out, 3)
	require.False(t, out[0].Failed())
	require.True(t, out[1].Failed())
	require.True(t, out[2].Failed())
}

func symbols(qs []domain.AssetQuote) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Symbol
	}
	return out
}
