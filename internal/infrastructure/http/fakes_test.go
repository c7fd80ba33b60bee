package httpserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
)

var (
	_ application.StockMarket  = (*fakeMarket)(nil)
	_ application.ETFMarket    = (*fakeMarket)(nil)
	_ application.CryptoMarket = (*fakeCrypto)(nil)
	_ application.NewsSource   = (*fakeNews)(nil)
)

type fakeMarket struct {
	kind   domain.AssetType
	quotes map[string]domain.AssetQuote
	err    error
}

func newFakeMarket(kind domain.AssetType, qs ...domain.AssetQuote) *fakeMarket {
	m := &fakeMarket{kind: kind, quotes: map[string]domain.AssetQuote{}}
	for _, q := range qs {
		q.Type = kind
		m.quotes[q.Symbol] = q
	}
	return m
}

func (m *fakeMarket) Quote(_ context.Context, symbol string) (domain.AssetQuote, error) {
	if m.err != nil {
		return domain.AssetQuote{}, m.err
	}
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.AssetQuote{}, err
	}
	q, ok := m.quotes[sym]
	if !ok {
		return domain.AssetQuote{}, &domain.UpstreamError{Provider: "fake", Status: 404, Kind: domain.ErrNotFound}
	}
	return q, nil
}

func (m *fakeMarket) Search(_ context.Context, q string) ([]domain.SearchResult, error) {
	out := []domain.SearchResult{}
	for sym, quote := range m.quotes {
		if strings.Contains(sym, strings.ToUpper(q)) {
			out = append(out, domain.SearchResult{Symbol: sym, Name: quote.Name, Type: m.kind})
		}
	}
	return out, nil
}

func (m *fakeMarket) Top(context.Context, int) ([]domain.AssetQuote, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.AssetQuote, 0, len(m.quotes))
	for _, q := range m.quotes {
		out = append(out, q)
	}
	return out, nil
}

func (m *fakeMarket) Batch(ctx context.Context, symbols []string) []domain.PortfolioEntry {
	out := make([]domain.PortfolioEntry, len(symbols))
	for i, sym := range symbols {
		out[i] = domain.PortfolioEntry{Symbol: sym, Type: string(m.kind)}
		q, err := m.Quote(ctx, sym)
		if err != nil {
			out[i].Err = err.Error()
			continue
		}
		out[i].Quote = &q
	}
	return out
}

func (m *fakeMarket) History(context.Context, string, string, string) ([]domain.HistoryPoint, error) {
	return nil, errors.New("not implemented")
}

func (m *fakeMarket) Movers(ctx context.Context) (domain.Movers, error) {
	qs, err := m.Top(ctx, 0)
	return domain.Movers{Gainers: qs, Losers: []domain.AssetQuote{}}, err
}

func (m *fakeMarket) Popular(ctx context.Context) ([]domain.AssetQuote, error) {
	return m.Top(ctx, 0)
}

func (m *fakeMarket) Holdings(ctx context.Context, symbol string) (domain.FundHoldings, error) {
	q, err := m.Quote(ctx, symbol)
	if err != nil {
		return domain.FundHoldings{}, err
	}
	return domain.FundHoldings{
		Symbol:           q.Symbol,
		Holdings:         []domain.Holding{{Symbol: "AAPL", Name: "Apple Inc", Weight: 0.07}},
		SectorWeightings: []domain.SectorWeight{{Sector: "technology", Weight: 0.31}},
		Timestamp:        q.Timestamp,
	}, nil
}

func (m *fakeMarket) Health() domain.ProviderHealth {
	return domain.ProviderHealth{Provider: "yahoo:" + string(m.kind)}
}

type fakeCrypto struct {
	*fakeMarket
}

func (c fakeCrypto) History(_ context.Context, _, interval string, limit int) ([]domain.HistoryPoint, error) {
	if interval == "" {
		interval = "1d"
	}
	if limit <= 0 {
		limit = 30
	}
	day := map[string]time.Duration{"1h": time.Hour, "1d": 24 * time.Hour}[interval]
	out := make([]domain.HistoryPoint, limit)
	for i := range out {
		out[i] = domain.HistoryPoint{Date: time.Unix(0, 0).UTC().Add(time.Duration(i) * day), Close: float64(i)}
	}
	return out, nil
}

func (c fakeCrypto) Trending(ctx context.Context, _ int) (domain.Movers, error) {
	return c.Movers(ctx)
}

func (c fakeCrypto) Instrument(_ context.Context, symbol string) (domain.Instrument, error) {
	return domain.Instrument{Symbol: symbol, BaseAsset: strings.TrimSuffix(symbol, "USDT"), QuoteAsset: "USDT", Status: "TRADING"}, nil
}

type fakeNews struct {
	gotCategory domain.NewsCategory
	gotLimit    int
}

func (n *fakeNews) Articles(_ context.Context, category domain.NewsCategory, limit int) ([]domain.Article, error) {
	n.gotCategory, n.gotLimit = category, limit
	return []domain.Article{{ID: "1", Title: "Markets rally", Category: "Markets"}}, nil
}

type fakeInspector struct {
	pingErr error
}

func (f fakeInspector) Stats(context.Context) cache.Stats {
	return cache.Stats{Backend: "memory", Keys: 3, Hits: 10, Misses: 2}
}

func (f fakeInspector) Ping(context.Context) error { return f.pingErr }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
