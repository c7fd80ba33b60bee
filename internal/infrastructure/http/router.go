package httpserver

import (
	"context"
	"net/http"
	"time"

	"marketdata-service/internal/infrastructure/logx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const requestIDKey contextKey = "request_id"
const traceIDKey contextKey = "trace_id"

// RouterConfig sets the per client request budget. A zero Max disables
// rate limiting.
type RouterConfig struct {
	RateLimitMax    int
	RateLimitWindow time.Duration
}

func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID())
	r.Use(traceID())
	r.Use(recoverer())
	r.Use(accessLog())
	r.Use(middleware.Compress(5))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if s.cache != nil {
			if err := s.cache.Ping(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "cache not ready")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	r.Get("/health", s.Health)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitMax > 0 {
			r.Use(httprate.Limit(cfg.RateLimitMax, cfg.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
					writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				}),
			))
		}

		r.Route("/stocks", func(r chi.Router) {
			r.Get("/quote/{symbol}", s.StockQuote)
			r.Get("/history/{symbol}", s.StockHistory)
			r.Get("/search", s.StockSearch)
			r.Get("/movers", s.StockMovers)
			r.Get("/top", s.StockTop)
			r.Get("/batch", s.StockBatch)
		})
		r.Route("/etfs", func(r chi.Router) {
			r.Get("/quote/{symbol}", s.ETFQuote)
			r.Get("/history/{symbol}", s.ETFHistory)
			r.Get("/holdings/{symbol}", s.ETFHoldings)
			r.Get("/search", s.ETFSearch)
			r.Get("/popular", s.ETFPopular)
			r.Get("/top", s.ETFTop)
			r.Get("/batch", s.ETFBatch)
		})
		r.Route("/crypto", func(r chi.Router) {
			r.Get("/price/{symbol}", s.CryptoPrice)
			r.Get("/history/{symbol}", s.CryptoHistory)
			r.Get("/trending", s.CryptoTrending)
			r.Get("/market-cap", s.CryptoTop)
			r.Get("/search", s.CryptoSearch)
			r.Get("/batch", s.CryptoBatch)
			r.Get("/info/{symbol}", s.CryptoInfo)
		})
		r.Get("/news", s.News)
		r.Get("/market/overview", s.MarketOverview)
		r.Get("/market/search", s.MarketSearch)
		r.Post("/portfolio", s.Portfolio)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route "+r.Method+" "+r.URL.Path+" not found")
	})
	return r
}

func requestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)
			ctx := context.WithValue(r.Context(), requestIDKey, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logx.WithFields(r.Context()).Error("panic recovered", zap.Any("error", rec))
					writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func accessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(sr, r)
			logx.WithFields(r.Context()).Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sr.status),
				zap.Int("bytes", sr.bytes),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// traceID also scopes the request logger to the request and trace IDs.
func traceID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tid := r.Header.Get("X-Trace-Id")
			if tid == "" {
				tid = uuid.NewString()
			}
			w.Header().Set("X-Trace-Id", tid)
			rid, _ := r.Context().Value(requestIDKey).(string)
			ctx := context.WithValue(r.Context(), traceIDKey, tid)
			ctx = logx.Into(ctx, logx.L().With(zap.String("request_id", rid), zap.String("trace_id", tid)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
