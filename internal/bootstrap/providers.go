package bootstrap

import (
	"context"
	"fmt"

	"marketdata-service/internal/application"
	"marketdata-service/internal/config"
	"marketdata-service/internal/infrastructure/binance"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/health"
	httpserver "marketdata-service/internal/infrastructure/http"
	"marketdata-service/internal/infrastructure/httpx"
	"marketdata-service/internal/infrastructure/logx"
	"marketdata-service/internal/infrastructure/provider/crypto"
	"marketdata-service/internal/infrastructure/provider/equities"
	"marketdata-service/internal/infrastructure/provider/news"
	"marketdata-service/internal/infrastructure/rss"
	"marketdata-service/internal/infrastructure/worker"
	"marketdata-service/internal/infrastructure/yahoo"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const upstreamRetries = 2

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

// Cache bundles the selected store with its inspection side and an optional
// background sweep, which only the memory backend needs.
type Cache struct {
	Store     cache.Store
	Inspector cache.Inspector
	Loader    *cache.Loader
	Run       func(ctx context.Context)
}

func ProvideCache(ctx context.Context, cfg config.Config, log *zap.Logger) (Cache, func(), error) {
	switch cfg.CacheBackend {
	case "", "memory":
		s := cache.NewMemory(cfg.CacheDefaultTTL, cache.WithCheckPeriod(cfg.CacheCheckPeriod))
		return Cache{Store: s, Inspector: s, Loader: cache.NewLoader(s), Run: s.Run}, func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return Cache{}, func() {}, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		s := cache.NewRedis(client, cfg.RedisPrefix, cfg.CacheDefaultTTL, log.With(zap.String("component", "cache")))
		cleanup := func() {
			log.Info("closing redis")
			_ = client.Close()
		}
		return Cache{Store: s, Inspector: s, Loader: cache.NewLoader(s), Run: func(context.Context) {}}, cleanup, nil
	default:
		return Cache{}, func() {}, fmt.Errorf("unsupported CACHE_BACKEND=%q", cfg.CacheBackend)
	}
}

func ProvideBinance(cfg config.Config, log *zap.Logger) *binance.Client {
	h := httpx.New("binance", cfg.RequestTimeout, upstreamRetries, log)
	return binance.New(h, binance.WithBaseURL(cfg.BinanceAPIBase))
}

func ProvideYahoo(cfg config.Config, log *zap.Logger) *yahoo.Client {
	h := httpx.New("yahoo", cfg.RequestTimeout, upstreamRetries, log)
	return yahoo.New(h, yahoo.WithBaseURL(cfg.YahooAPIBase))
}

func ProvideRSS(cfg config.Config, log *zap.Logger) *rss.Fetcher {
	return rss.New(httpx.New("rss", cfg.RequestTimeout, 0, log))
}

func ProvideCrypto(up *binance.Client, c Cache, cfg config.Config, log *zap.Logger) *crypto.Client {
	return crypto.New(up, c.Loader,
		crypto.WithLogger(log),
		crypto.WithTTLs(crypto.TTLs{
			Quote:    cfg.TTL.CryptoQuote,
			History:  cfg.TTL.History,
			Search:   cfg.TTL.Search,
			Fallback: cfg.TTL.Fallback,
		}),
	)
}

func ProvideStocks(up *yahoo.Client, c Cache, cfg config.Config, log *zap.Logger) *equities.Client {
	p := equities.Stocks()
	p.BatchDelay = cfg.StockBatchDelay
	return provideEquities(up, c, p, cfg, log)
}

func ProvideETFs(up *yahoo.Client, c Cache, cfg config.Config, log *zap.Logger) *equities.Client {
	p := equities.ETFs()
	p.BatchDelay = cfg.ETFBatchDelay
	return provideEquities(up, c, p, cfg, log)
}

func provideEquities(up *yahoo.Client, c Cache, p equities.Profile, cfg config.Config, log *zap.Logger) *equities.Client {
	h := health.New("yahoo:"+string(p.Type),
		health.WithLogger(log),
		health.WithThreshold(cfg.DegradedThreshold),
		health.WithCooldown(cfg.DegradedCooldown),
	)
	return equities.New(up, c.Loader, p,
		equities.WithLogger(log),
		equities.WithHealth(h),
		equities.WithBatchSize(cfg.BatchSize),
		equities.WithTTLs(equities.TTLs{
			Quote:    cfg.TTL.StockQuote,
			History:  cfg.TTL.History,
			Search:   cfg.TTL.Search,
			Fallback: cfg.TTL.Fallback,
		}),
	)
}

func ProvideNews(f *rss.Fetcher, c Cache, cfg config.Config, log *zap.Logger) *news.Service {
	return news.New(f, c.Loader,
		news.WithLogger(log),
		news.WithTTLs(news.TTLs{Articles: cfg.TTL.News, Fallback: cfg.TTL.Fallback}),
	)
}

func ProvideAggregator(stocks application.StockMarket, etfs application.ETFMarket, crypto application.CryptoMarket) *application.Aggregator {
	return application.NewAggregator(stocks, etfs, crypto)
}

func ProvideWarmer(stocks application.StockMarket, etfs application.ETFMarket, crypto application.CryptoMarket, cfg config.Config, log *zap.Logger) *worker.Warmer {
	return &worker.Warmer{
		Stocks: stocks,
		ETFs:   etfs,
		Crypto: crypto,
		Every:  cfg.WarmerInterval,
		Log:    log.With(zap.String("component", "warmer")),
	}
}

func ProvideServer(m Markets, n application.NewsSource, agg *application.Aggregator, c Cache) *httpserver.Server {
	return httpserver.NewServer(httpserver.Deps{
		Stocks:     m.Stocks,
		ETFs:       m.ETFs,
		Crypto:     m.Crypto,
		News:       n,
		Aggregator: agg,
		Cache:      c.Inspector,
	})
}
