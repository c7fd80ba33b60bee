package crypto

import (
	"context"

	"marketdata-service/internal/infrastructure/binance"
)

//go:generate mockgen -package=crypto_test -destination=mock_upstream_test.go -source=upstream.go Upstream
type Upstream interface {
	Ticker(ctx context.Context, pair string) (binance.Ticker, error)
	Tickers(ctx context.Context) ([]binance.Ticker, error)
	Klines(ctx context.Context, pair, interval string, limit int) ([]binance.Kline, error)
	ExchangeInfo(ctx context.Context, pair string) (binance.ExchangeInfo, error)
}

var _ Upstream = (*binance.Client)(nil)
