package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/httpx"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client is a minimal client for the quote, chart, search and quoteSummary
// endpoints.
type Client struct {
	baseURL string
	http    *httpx.Client
}

type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func New(h *httpx.Client, opts ...Option) *Client {
	c := &Client{baseURL: DefaultBaseURL, http: h}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Quote(ctx context.Context, symbol string) (Quote, error) {
	var out quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", url.Values{"symbols": {symbol}}, &out); err != nil {
		return Quote{}, fmt.Errorf("yahoo: quote %s: %w", symbol, err)
	}
	if e := out.QuoteResponse.Error; e != nil {
		return Quote{}, fmt.Errorf("yahoo: quote %s: %w", symbol, apiErr(e))
	}
	if len(out.QuoteResponse.Result) == 0 {
		return Quote{}, fmt.Errorf("yahoo: quote %s: %w", symbol, domain.ErrNotFound)
	}
	return out.QuoteResponse.Result[0], nil
}

// Chart returns candles between from and to at the given interval.
func (c *Client) Chart(ctx context.Context, symbol string, from, to time.Time, interval string) (ChartResult, error) {
	q := url.Values{
		"period1":  {strconv.FormatInt(from.Unix(), 10)},
		"period2":  {strconv.FormatInt(to.Unix(), 10)},
		"interval": {interval},
	}
	var out chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), q, &out); err != nil {
		return ChartResult{}, fmt.Errorf("yahoo: chart %s: %w", symbol, err)
	}
	if e := out.Chart.Error; e != nil {
		return ChartResult{}, fmt.Errorf("yahoo: chart %s: %w", symbol, apiErr(e))
	}
	if len(out.Chart.Result) == 0 {
		return ChartResult{}, fmt.Errorf("yahoo: chart %s: %w", symbol, domain.ErrNotFound)
	}
	return out.Chart.Result[0], nil
}

func (c *Client) Search(ctx context.Context, query string) ([]SearchQuote, error) {
	q := url.Values{
		"q":           {query},
		"quotesCount": {"20"},
		"newsCount":   {"0"},
	}
	var out searchResponse
	if err := c.get(ctx, "/v1/finance/search", q, &out); err != nil {
		return nil, fmt.Errorf("yahoo: search %q: %w", query, err)
	}
	return out.Quotes, nil
}

// QuoteSummary returns the requested quoteSummary modules for symbol.
func (c *Client) QuoteSummary(ctx context.Context, symbol string, modules ...string) (QuoteSummary, error) {
	q := url.Values{"modules": {strings.Join(modules, ",")}}
	var out quoteSummaryResponse
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), q, &out); err != nil {
		return QuoteSummary{}, fmt.Errorf("yahoo: quote summary %s: %w", symbol, err)
	}
	if e := out.QuoteSummary.Error; e != nil {
		return QuoteSummary{}, fmt.Errorf("yahoo: quote summary %s: %w", symbol, apiErr(e))
	}
	if len(out.QuoteSummary.Result) == 0 {
		return QuoteSummary{}, fmt.Errorf("yahoo: quote summary %s: %w", symbol, domain.ErrNotFound)
	}
	return out.QuoteSummary.Result[0], nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.DoJSON(ctx, req, out)
}

func apiErr(e *apiError) error {
	if e.Code == "Not Found" {
		return fmt.Errorf("%s: %w", e.Description, domain.ErrNotFound)
	}
	return &domain.UpstreamError{Provider: "yahoo", Kind: domain.ErrUpstreamUnavailable, Err: fmt.Errorf("%s: %s", e.Code, e.Description)}
}
