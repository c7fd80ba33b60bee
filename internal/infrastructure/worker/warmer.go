package worker

import (
	"context"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

// Warmer keeps the listing caches populated by calling the top and movers
// operations on a fixed interval.
type Warmer struct {
	Stocks   application.StockMarket
	ETFs     application.ETFMarket
	Crypto   application.CryptoMarket
	Every    time.Duration
	TopLimit int
	Log      *zap.Logger
}

var _ application.Worker = (*Warmer)(nil)

func (w *Warmer) Start(ctx context.Context) {
	if w.Every <= 0 {
		return
	}
	log := logx.OrNop(w.Log)
	w.warm(ctx, log)

	ticker := time.NewTicker(w.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx, log)
		}
	}
}

func (w *Warmer) warm(ctx context.Context, log *zap.Logger) {
	limit := w.TopLimit
	if limit <= 0 {
		limit = 50
	}
	start := time.Now()
	results := map[string]error{
		"stocks": errOf(w.Stocks.Top(ctx, limit)),
		"etfs":   errOf(w.ETFs.Top(ctx, limit)),
		"crypto": errOf(w.Crypto.Top(ctx, limit)),
		"movers": errOf(w.Stocks.Movers(ctx)),
	}
	failed := 0
	for name, err := range results {
		if err != nil {
			failed++
			log.Warn("cache warm failed", zap.String("listing", name), zap.Error(err))
		}
	}
	log.Debug("cache warmed", zap.Int("failed", failed), zap.Duration("took", time.Since(start)))
}

func errOf[T any](_ T, err error) error { return err }
