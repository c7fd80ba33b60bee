package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"marketdata-service/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	overviewETFs   = 5
	overviewCrypto = 5
)

// Aggregator combines the per asset class sources into portfolio and
// market-wide views. Every view isolates failures to the affected part.
type Aggregator struct {
	stocks StockMarket
	etfs   ETFMarket
	crypto CryptoMarket
	clock  Clock
}

type Option func(*Aggregator)

func WithClock(c Clock) Option { return func(a *Aggregator) { a.clock = c } }

func NewAggregator(stocks StockMarket, etfs ETFMarket, crypto CryptoMarket, opts ...Option) *Aggregator {
	a := &Aggregator{stocks: stocks, etfs: etfs, crypto: crypto}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		a.clock = RealClock{}
	}
	return a
}

func (a *Aggregator) source(t domain.AssetType) QuoteSource {
	switch t {
	case domain.AssetStock:
		return a.stocks
	case domain.AssetETF:
		return a.etfs
	default:
		return a.crypto
	}
}

// PortfolioData quotes every item in parallel. The result has one entry per
// item in input order; an item that cannot be quoted carries its error.
func (a *Aggregator) PortfolioData(ctx context.Context, items []domain.PortfolioItem) []domain.PortfolioEntry {
	out := make([]domain.PortfolioEntry, len(items))
	var wg sync.WaitGroup
	for i, it := range items {
		i, it := i, it
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = a.entry(ctx, it)
		}()
	}
	wg.Wait()
	return out
}

func (a *Aggregator) entry(ctx context.Context, it domain.PortfolioItem) domain.PortfolioEntry {
	e := domain.PortfolioEntry{Symbol: it.Symbol, Type: it.Type}
	t, err := domain.ParseAssetType(it.Type)
	if err != nil {
		e.Err = err.Error()
		return e
	}
	q, err := a.source(t).Quote(ctx, it.Symbol)
	if err != nil {
		e.Err = err.Error()
		return e
	}
	e.Quote = &q
	return e
}

// MarketOverview fetches stock movers, popular ETFs and the top crypto pairs
// concurrently. A failed part is left empty and reported in Errors; an error
// is returned only when every part failed.
func (a *Aggregator) MarketOverview(ctx context.Context) (domain.MarketOverview, error) {
	ov := domain.MarketOverview{
		Stocks: domain.Movers{Gainers: []domain.AssetQuote{}, Losers: []domain.AssetQuote{}},
		ETFs:   []domain.AssetQuote{},
		Crypto: []domain.AssetQuote{},
	}
	var g errgroup.Group
	var stocksErr, etfsErr, cryptoErr error
	g.Go(func() error {
		m, err := a.stocks.Movers(ctx)
		if err != nil {
			stocksErr = err
			return nil
		}
		ov.Stocks = m
		return nil
	})
	g.Go(func() error {
		qs, err := a.etfs.Popular(ctx)
		if err != nil {
			etfsErr = err
			return nil
		}
		ov.ETFs = qs[:min(overviewETFs, len(qs))]
		return nil
	})
	g.Go(func() error {
		qs, err := a.crypto.Top(ctx, overviewCrypto)
		if err != nil {
			cryptoErr = err
			return nil
		}
		ov.Crypto = qs
		return nil
	})
	_ = g.Wait()
	ov.Timestamp = a.clock.Now()

	if stocksErr != nil && etfsErr != nil && cryptoErr != nil {
		return domain.MarketOverview{}, fmt.Errorf("market overview: %w",
			errors.Join(fmt.Errorf("stocks: %w", stocksErr), fmt.Errorf("etfs: %w", etfsErr), fmt.Errorf("crypto: %w", cryptoErr)))
	}
	for name, err := range map[string]error{"stocks": stocksErr, "etfs": etfsErr, "crypto": cryptoErr} {
		if err == nil {
			continue
		}
		if ov.Errors == nil {
			ov.Errors = map[string]string{}
		}
		ov.Errors[name] = err.Error()
	}
	return ov, nil
}

// SearchAll runs the query against every asset class; a failed class yields
// an empty list.
func (a *Aggregator) SearchAll(ctx context.Context, q string) domain.SearchAllResult {
	res := domain.SearchAllResult{
		Stocks: []domain.SearchResult{},
		ETFs:   []domain.SearchResult{},
		Crypto: []domain.SearchResult{},
	}
	var g errgroup.Group
	for _, b := range []struct {
		src QuoteSource
		dst *[]domain.SearchResult
	}{
		{a.stocks, &res.Stocks},
		{a.etfs, &res.ETFs},
		{a.crypto, &res.Crypto},
	} {
		b := b
		g.Go(func() error {
			if found, err := b.src.Search(ctx, q); err == nil && found != nil {
				*b.dst = found
			}
			return nil
		})
	}
	_ = g.Wait()
	return res
}

// PortfolioStats sums price and change over the entries that resolved and
// averages their change percent. Sums use decimal arithmetic so the totals
// do not drift with the number of entries.
func PortfolioStats(entries []domain.PortfolioEntry) domain.PortfolioStats {
	var (
		value, change, pct decimal.Decimal
		stats              domain.PortfolioStats
	)
	for _, e := range entries {
		if e.Failed() {
			continue
		}
		q := e.Quote
		value = value.Add(decimal.NewFromFloat(q.Price))
		change = change.Add(decimal.NewFromFloat(q.Change))
		pct = pct.Add(decimal.NewFromFloat(q.ChangePercent))
		stats.AssetCount++
		switch q.Type {
		case domain.AssetStock:
			stats.ByType.Stocks++
		case domain.AssetETF:
			stats.ByType.ETFs++
		case domain.AssetCrypto:
			stats.ByType.Crypto++
		}
	}
	if stats.AssetCount == 0 {
		return stats
	}
	stats.TotalValue = value.InexactFloat64()
	stats.TotalChange = change.InexactFloat64()
	stats.TotalChangePercent = pct.Div(decimal.NewFromInt(int64(stats.AssetCount))).InexactFloat64()
	return stats
}
