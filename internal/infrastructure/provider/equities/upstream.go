package equities

import (
	"context"
	"time"

	"marketdata-service/internal/infrastructure/yahoo"
)

//go:generate mockgen -package=equities_test -destination=mock_upstream_test.go -source=upstream.go Upstream
type Upstream interface {
	Quote(ctx context.Context, symbol string) (yahoo.Quote, error)
	Chart(ctx context.Context, symbol string, from, to time.Time, interval string) (yahoo.ChartResult, error)
	Search(ctx context.Context, query string) ([]yahoo.SearchQuote, error)
	QuoteSummary(ctx context.Context, symbol string, modules ...string) (yahoo.QuoteSummary, error)
}

var _ Upstream = (*yahoo.Client)(nil)
