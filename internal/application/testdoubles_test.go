package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketdata-service/internal/domain"
)

var errUpstream = &domain.UpstreamError{Provider: "fake", Kind: domain.ErrUpstreamUnavailable}

// fakeMarket serves quotes from a map and implements every market port.
type fakeMarket struct {
	kind    domain.AssetType
	quotes  map[string]domain.AssetQuote
	results []domain.SearchResult
	err     error
}

func newFakeMarket(kind domain.AssetType, quotes ...domain.AssetQuote) *fakeMarket {
	m := &fakeMarket{kind: kind, quotes: map[string]domain.AssetQuote{}}
	for _, q := range quotes {
		q.Type = kind
		m.quotes[q.Symbol] = q
	}
	return m
}

func (f *fakeMarket) Quote(_ context.Context, symbol string) (domain.AssetQuote, error) {
	if f.err != nil {
		return domain.AssetQuote{}, f.err
	}
	q, ok := f.quotes[strings.ToUpper(symbol)]
	if !ok {
		return domain.AssetQuote{}, domain.ErrNotFound
	}
	return q, nil
}

func (f *fakeMarket) Search(_ context.Context, _ string) ([]domain.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeMarket) Top(_ context.Context, limit int) ([]domain.AssetQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.AssetQuote, 0, len(f.quotes))
	for _, q := range f.quotes {
		out = append(out, q)
	}
	return out[:min(limit, len(out))], nil
}

func (f *fakeMarket) Batch(ctx context.Context, symbols []string) []domain.PortfolioEntry {
	out := make([]domain.PortfolioEntry, len(symbols))
	for i, s := range symbols {
		out[i] = domain.PortfolioEntry{Symbol: s, Type: string(f.kind)}
		if q, err := f.Quote(ctx, s); err == nil {
			out[i].Quote = &q
		} else {
			out[i].Err = err.Error()
		}
	}
	return out
}

func (f *fakeMarket) History(_ context.Context, _, _, _ string) ([]domain.HistoryPoint, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMarket) Movers(ctx context.Context) (domain.Movers, error) {
	qs, err := f.Top(ctx, 10)
	if err != nil {
		return domain.Movers{}, err
	}
	return domain.Movers{Gainers: qs, Losers: []domain.AssetQuote{}}, nil
}

func (f *fakeMarket) Popular(ctx context.Context) ([]domain.AssetQuote, error) { return f.Top(ctx, 10) }

func (f *fakeMarket) Holdings(_ context.Context, symbol string) (domain.FundHoldings, error) {
	return domain.FundHoldings{Symbol: symbol, Holdings: []domain.Holding{}, SectorWeightings: []domain.SectorWeight{}}, nil
}

func (f *fakeMarket) Health() domain.ProviderHealth { return domain.ProviderHealth{Provider: string(f.kind)} }

// fakeCrypto adapts fakeMarket to the crypto port, whose History differs.
type fakeCrypto struct{ *fakeMarket }

func (f fakeCrypto) History(_ context.Context, _, _ string, _ int) ([]domain.HistoryPoint, error) {
	return nil, errors.New("not implemented")
}

func (f fakeCrypto) Trending(ctx context.Context, _ int) (domain.Movers, error) {
	return f.Movers(ctx)
}

func (f fakeCrypto) Instrument(_ context.Context, symbol string) (domain.Instrument, error) {
	return domain.Instrument{Symbol: symbol}, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
