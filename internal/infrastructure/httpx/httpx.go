package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketdata-service/internal/domain"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const maxBody = 8 << 20

// Client performs upstream calls and turns transport failures and HTTP
// statuses into domain.UpstreamError values. Transport errors and 5xx
// responses are retried up to Retries times; everything else fails fast.
type Client struct {
	HTTP      *http.Client
	Provider  string
	UserAgent string
	Retries   int
	Log       *zap.Logger
	// StatusKinds overrides the error kind for specific statuses, e.g. an
	// exchange answering 400 for an unknown symbol.
	StatusKinds map[int]error
}

// New returns a client with a bounded per-request timeout.
func New(provider string, timeout time.Duration, retries int, log *zap.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		Provider:  provider,
		UserAgent: "marketdata-service/1.0",
		Retries:   retries,
		Log:       log,
	}
}

func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", c.Provider, domain.ErrMalformed, err)
	}
	return nil
}

// Do returns the body of a 2xx response.
func (c *Client) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	if c.HTTP == nil {
		c.HTTP = http.DefaultClient
	}
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req = req.WithContext(ctx)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = 3 * time.Second

	var retries uint64
	if c.Retries > 0 {
		retries = uint64(c.Retries)
	}

	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		resp, err := c.HTTP.Do(req)
		if err != nil {
			uerr := &domain.UpstreamError{Provider: c.Provider, Kind: domain.ErrUpstreamUnavailable, Err: err}
			if ctx.Err() != nil {
				return backoff.Permanent(uerr)
			}
			c.logRetry(req, attempt, uerr)
			return uerr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
			if err != nil {
				return backoff.Permanent(&domain.UpstreamError{Provider: c.Provider, Kind: domain.ErrUpstreamUnavailable, Err: err})
			}
			body = b
			return nil
		}
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		uerr := &domain.UpstreamError{Provider: c.Provider, Status: resp.StatusCode, Kind: c.kindFor(resp.StatusCode)}
		if resp.StatusCode >= 500 {
			c.logRetry(req, attempt, uerr)
			return uerr
		}
		return backoff.Permanent(uerr)
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx))
	if err == nil {
		return body, nil
	}
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		return nil, err
	}
	return nil, &domain.UpstreamError{Provider: c.Provider, Kind: domain.ErrUpstreamUnavailable, Err: err}
}

func (c *Client) kindFor(status int) error {
	if k, ok := c.StatusKinds[status]; ok {
		return k
	}
	switch {
	case status == http.StatusTooManyRequests || status == http.StatusTeapot:
		return domain.ErrRateLimited
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrUpstreamUnavailable
	}
}

func (c *Client) logRetry(req *http.Request, attempt int, err error) {
	if c.Log == nil || attempt > c.Retries {
		return
	}
	c.Log.Warn("upstream call failed, retrying",
		zap.String("provider", c.Provider),
		zap.String("path", req.URL.Path),
		zap.Int("attempt", attempt),
		zap.Error(err),
	)
}
