package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/logx"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are the collaborators behind the API. Cache may be nil.
type Deps struct {
	Stocks     application.StockMarket
	ETFs       application.ETFMarket
	Crypto     application.CryptoMarket
	News       application.NewsSource
	Aggregator *application.Aggregator
	Cache      cache.Inspector
	Clock      application.Clock
}

type Server struct {
	stocks     application.StockMarket
	etfs       application.ETFMarket
	crypto     application.CryptoMarket
	news       application.NewsSource
	aggregator *application.Aggregator
	cache      cache.Inspector
	clock      application.Clock
	started    time.Time
}

func NewServer(d Deps) *Server {
	if d.Clock == nil {
		d.Clock = application.RealClock{}
	}
	return &Server{
		stocks:     d.Stocks,
		etfs:       d.ETFs,
		crypto:     d.Crypto,
		news:       d.News,
		aggregator: d.Aggregator,
		cache:      d.Cache,
		clock:      d.Clock,
		started:    d.Clock.Now(),
	}
}

type healthResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Uptime    float64                 `json:"uptime"`
	Cache     *cache.Stats            `json:"cache,omitempty"`
	Providers []domain.ProviderHealth `json:"providers"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	now := s.clock.Now()
	resp := healthResponse{
		Status:    "OK",
		Timestamp: now,
		Uptime:    now.Sub(s.started).Seconds(),
		Providers: []domain.ProviderHealth{s.stocks.Health(), s.etfs.Health()},
	}
	if s.cache != nil {
		st := s.cache.Stats(r.Context())
		resp.Cache = &st
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) StockQuote(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.stocks.Quote(r.Context(), chi.URLParam(r, "symbol")))
}

func (s *Server) StockHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond(w, r)(s.stocks.History(r.Context(), chi.URLParam(r, "symbol"), q.Get("period"), q.Get("interval")))
}

func (s *Server) StockSearch(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.stocks.Search)
}

func (s *Server) StockMovers(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.stocks.Movers(r.Context()))
}

func (s *Server) StockTop(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.stocks.Top(r.Context(), intParam(r, "limit", 0)))
}

func (s *Server) StockBatch(w http.ResponseWriter, r *http.Request) {
	s.batch(w, r, s.stocks.Batch)
}

func (s *Server) ETFQuote(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.etfs.Quote(r.Context(), chi.URLParam(r, "symbol")))
}

func (s *Server) ETFHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond(w, r)(s.etfs.History(r.Context(), chi.URLParam(r, "symbol"), q.Get("period"), q.Get("interval")))
}

func (s *Server) ETFHoldings(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.etfs.Holdings(r.Context(), chi.URLParam(r, "symbol")))
}

func (s *Server) ETFSearch(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.etfs.Search)
}

func (s *Server) ETFPopular(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.etfs.Popular(r.Context()))
}

func (s *Server) ETFTop(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.etfs.Top(r.Context(), intParam(r, "limit", 0)))
}

func (s *Server) ETFBatch(w http.ResponseWriter, r *http.Request) {
	s.batch(w, r, s.etfs.Batch)
}

func (s *Server) CryptoPrice(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.crypto.Quote(r.Context(), chi.URLParam(r, "symbol")))
}

func (s *Server) CryptoHistory(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.crypto.History(r.Context(), chi.URLParam(r, "symbol"), r.URL.Query().Get("interval"), intParam(r, "limit", 0)))
}

func (s *Server) CryptoTrending(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.crypto.Trending(r.Context(), intParam(r, "limit", 0)))
}

func (s *Server) CryptoTop(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.crypto.Top(r.Context(), intParam(r, "limit", 0)))
}

func (s *Server) CryptoSearch(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.crypto.Search)
}

func (s *Server) CryptoBatch(w http.ResponseWriter, r *http.Request) {
	s.batch(w, r, s.crypto.Batch)
}

func (s *Server) CryptoInfo(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.crypto.Instrument(r.Context(), chi.URLParam(r, "symbol")))
}

func (s *Server) News(w http.ResponseWriter, r *http.Request) {
	category := domain.NewsCategory(strings.ToLower(r.URL.Query().Get("category")))
	if category == "" {
		category = domain.NewsAll
	}
	respond(w, r)(s.news.Articles(r.Context(), category, intParam(r, "limit", 0)))
}

func (s *Server) MarketOverview(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(s.aggregator.MarketOverview(r.Context()))
}

func (s *Server) MarketSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "search query is required")
		return
	}
	writeData(w, s.aggregator.SearchAll(r.Context(), q))
}

type portfolioRequest struct {
	Items []domain.PortfolioItem `json:"items"`
}

type portfolioResponse struct {
	Data  []domain.PortfolioEntry `json:"data"`
	Stats domain.PortfolioStats   `json:"stats"`
}

func (s *Server) Portfolio(w http.ResponseWriter, r *http.Request) {
	var body portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(body.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items are required")
		return
	}
	entries := s.aggregator.PortfolioData(r.Context(), body.Items)
	writeJSON(w, http.StatusOK, portfolioResponse{
		Data:  entries,
		Stats: application.PortfolioStats(entries),
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) ([]domain.SearchResult, error)) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "search query is required")
		return
	}
	respond(w, r)(fn(r.Context(), q))
}

func (s *Server) batch(w http.ResponseWriter, r *http.Request, fn func(context.Context, []string) []domain.PortfolioEntry) {
	var symbols []string
	for _, sym := range strings.Split(r.URL.Query().Get("symbols"), ",") {
		if sym = strings.TrimSpace(sym); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	if len(symbols) == 0 {
		writeError(w, http.StatusBadRequest, "symbols parameter is required")
		return
	}
	writeData(w, fn(r.Context(), symbols))
}

// respond writes the success envelope, or the mapped error.
func respond(w http.ResponseWriter, r *http.Request) func(any, error) {
	return func(v any, err error) {
		if err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				logx.WithFields(r.Context()).Warn("request failed", zap.String("path", r.URL.Path), zap.Error(err))
			}
			writeError(w, status, err.Error())
			return
		}
		writeData(w, v)
	}
}

func intParam(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol), errors.Is(err, domain.ErrUnknownAssetType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrMalformed),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeData(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: v})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Error: &errorBody{Message: msg, Status: status}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
