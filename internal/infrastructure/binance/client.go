package binance

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/httpx"
)

const DefaultBaseURL = "https://api.binance.com/api/v3"

// Client talks to the exchange's public market data endpoints.
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

// New wraps h. The exchange answers 400 for unknown trading pairs, so that
// status is reported as not found.
func New(h *httpx.Client, opts ...Option) *Client {
	if h.StatusKinds == nil {
		h.StatusKinds = map[int]error{}
	}
	h.StatusKinds[http.StatusBadRequest] = domain.ErrNotFound
	c := &Client{baseURL: DefaultBaseURL, http: h}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ticker returns 24 hour statistics for one pair.
func (c *Client) Ticker(ctx context.Context, pair string) (Ticker, error) {
	var out Ticker
	if err := c.get(ctx, "/ticker/24hr", url.Values{"symbol": {pair}}, &out); err != nil {
		return Ticker{}, fmt.Errorf("binance: ticker %s: %w", pair, err)
	}
	return out, nil
}

// Tickers returns 24 hour statistics for every listed pair.
func (c *Client) Tickers(ctx context.Context) ([]Ticker, error) {
	var out []Ticker
	if err := c.get(ctx, "/ticker/24hr", nil, &out); err != nil {
		return nil, fmt.Errorf("binance: tickers: %w", err)
	}
	return out, nil
}

func (c *Client) Klines(ctx context.Context, pair, interval string, limit int) ([]Kline, error) {
	q := url.Values{
		"symbol":   {pair},
		"interval": {interval},
		"limit":    {strconv.Itoa(limit)},
	}
	var out []Kline
	if err := c.get(ctx, "/klines", q, &out); err != nil {
		return nil, fmt.Errorf("binance: klines %s: %w", pair, err)
	}
	return out, nil
}

// ExchangeInfo returns instrument metadata; an empty pair lists everything.
func (c *Client) ExchangeInfo(ctx context.Context, pair string) (ExchangeInfo, error) {
	var q url.Values
	if pair != "" {
		q = url.Values{"symbol": {pair}}
	}
	var out ExchangeInfo
	if err := c.get(ctx, "/exchangeInfo", q, &out); err != nil {
		return ExchangeInfo{}, fmt.Errorf("binance: exchange info: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.DoJSON(ctx, req, out)
}
