package main

import (
	"context"
	"os/signal"
	"syscall"

	"marketdata-service/internal/bootstrap"
	"marketdata-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	log := logx.L()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := bootstrap.InitWorker(ctx)
	if err != nil {
		log.Fatal("init worker", zap.Error(err))
	}
	defer cleanup()

	if app.Config.CacheBackend != "redis" {
		log.Warn("warmer runs against a private memory cache; set CACHE_BACKEND=redis to share it")
	}
	if app.Warmer.Every <= 0 {
		log.Fatal("no warm interval configured (WARMER_INTERVAL_MS)")
	}
	go app.Cache.Run(ctx)

	log.Info("warmer started", zap.Duration("every", app.Warmer.Every))
	app.Warmer.Start(ctx)
	app.Markets.Wait()
	log.Info("warmer stopped")
}
