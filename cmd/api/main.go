package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketdata-service/internal/bootstrap"
	"marketdata-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, cleanup, err := bootstrap.InitAPI(ctx)
	if err != nil {
		logger.Fatal("bootstrap api", zap.Error(err))
	}
	defer cleanup()

	go app.Cache.Run(ctx)
	go app.Warmer.Start(ctx)

	addr := ":" + app.Config.Port
	server := &http.Server{
		Addr:    addr,
		Handler: app.Handler,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", addr),
			zap.String("env", app.Config.Env),
			zap.String("cache", app.Config.CacheBackend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	cancel()

	shutdownCtx, shCancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer shCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	app.Markets.Wait()
	logger.Info("server stopped")
}
