package rss

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/httpx"

	"github.com/mmcdole/gofeed"
)

// Fetcher downloads and parses RSS or Atom feeds.
type Fetcher struct {
	http *httpx.Client
}

func New(h *httpx.Client) *Fetcher { return &Fetcher{http: h} }

func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("rss: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	body, err := f.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("rss: fetch %s: %w", feedURL, err)
	}
	// gofeed parsers keep state while parsing, so each call gets its own.
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rss: parse %s: %w: %w", feedURL, domain.ErrMalformed, err)
	}
	return feed, nil
}
