package application

import (
	"context"

	"marketdata-service/internal/domain"
)

// QuoteSource resolves quotes for one asset class.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (domain.AssetQuote, error)
	Search(ctx context.Context, q string) ([]domain.SearchResult, error)
	Top(ctx context.Context, limit int) ([]domain.AssetQuote, error)
	Batch(ctx context.Context, symbols []string) []domain.PortfolioEntry
}

type StockMarket interface {
	QuoteSource
	History(ctx context.Context, symbol, period, interval string) ([]domain.HistoryPoint, error)
	Movers(ctx context.Context) (domain.Movers, error)
	Health() domain.ProviderHealth
}

type ETFMarket interface {
	QuoteSource
	History(ctx context.Context, symbol, period, interval string) ([]domain.HistoryPoint, error)
	Popular(ctx context.Context) ([]domain.AssetQuote, error)
	Holdings(ctx context.Context, symbol string) (domain.FundHoldings, error)
	Health() domain.ProviderHealth
}

type CryptoMarket interface {
	QuoteSource
	History(ctx context.Context, symbol, interval string, limit int) ([]domain.HistoryPoint, error)
	Trending(ctx context.Context, limit int) (domain.Movers, error)
	Instrument(ctx context.Context, symbol string) (domain.Instrument, error)
}

type NewsSource interface {
	Articles(ctx context.Context, category domain.NewsCategory, limit int) ([]domain.Article, error)
}
