package bootstrap

import (
	"context"
	"net/http"

	"marketdata-service/internal/config"
	httpserver "marketdata-service/internal/infrastructure/http"
	"marketdata-service/internal/infrastructure/provider/crypto"
	"marketdata-service/internal/infrastructure/provider/equities"
	"marketdata-service/internal/infrastructure/worker"

	"go.uber.org/zap"
)

// Markets holds the per asset class clients shared by every process.
type Markets struct {
	Stocks *equities.Client
	ETFs   *equities.Client
	Crypto *crypto.Client
}

// Wait blocks until background refreshes started by the equities clients
// have finished.
func (m Markets) Wait() {
	m.Stocks.Wait()
	m.ETFs.Wait()
}

type App struct {
	Config  config.Config
	Log     *zap.Logger
	Cache   Cache
	Markets Markets
	Warmer  *worker.Warmer
	Handler http.Handler
}

func provideMarkets(c Cache, cfg config.Config, log *zap.Logger) Markets {
	y := ProvideYahoo(cfg, log)
	return Markets{
		Stocks: ProvideStocks(y, c, cfg, log),
		ETFs:   ProvideETFs(y, c, cfg, log),
		Crypto: ProvideCrypto(ProvideBinance(cfg, log), c, cfg, log),
	}
}

// InitAPI builds the HTTP API with its cache and upstream clients.
func InitAPI(ctx context.Context) (*App, func(), error) {
	log := ProvideLogger()
	cfg := ProvideConfig()
	c, cleanup, err := ProvideCache(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	m := provideMarkets(c, cfg, log)
	agg := ProvideAggregator(m.Stocks, m.ETFs, m.Crypto)
	srv := ProvideServer(m, ProvideNews(ProvideRSS(cfg, log), c, cfg, log), agg, c)
	return &App{
		Config:  cfg,
		Log:     log,
		Cache:   c,
		Markets: m,
		Warmer:  ProvideWarmer(m.Stocks, m.ETFs, m.Crypto, cfg, log),
		Handler: httpserver.NewRouter(srv, httpserver.RouterConfig{
			RateLimitMax:    cfg.RateLimitMax,
			RateLimitWindow: cfg.RateLimitWindow,
		}),
	}, cleanup, nil
}

// InitWorker builds a cache warmer without the HTTP surface, for running
// against a shared cache.
func InitWorker(ctx context.Context) (*App, func(), error) {
	log := ProvideLogger()
	cfg := ProvideConfig()
	c, cleanup, err := ProvideCache(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	m := provideMarkets(c, cfg, log)
	return &App{
		Config:  cfg,
		Log:     log,
		Cache:   c,
		Markets: m,
		Warmer:  ProvideWarmer(m.Stocks, m.ETFs, m.Crypto, cfg, log),
	}, cleanup, nil
}
