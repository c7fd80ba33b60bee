//go:build e2e
// +build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"marketdata-service/internal/bootstrap"
	"marketdata-service/internal/domain"
)

const (
	requestTimeout    = 30 * time.Second
	readyTimeout      = 10 * time.Second
	readyPollInterval = 250 * time.Millisecond
)

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// startAPI runs the fully wired API against the real upstreams. Quotes may be
// live or static depending on upstream reachability; both are valid here.
func startAPI(t *testing.T) string {
	t.Helper()
	if os.Getenv("E2E") != "1" {
		t.Skip("E2E not enabled")
	}
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "1000")

	ctx, cancel := context.WithCancel(context.Background())
	app, cleanup, err := bootstrap.InitAPI(ctx)
	if err != nil {
		cancel()
		t.Fatalf("init api: %v", err)
	}
	go app.Cache.Run(ctx)

	srv := httptest.NewServer(app.Handler)
	t.Cleanup(func() {
		srv.Close()
		cancel()
		app.Markets.Wait()
		cleanup()
	})
	waitForReady(t, srv.URL)
	return srv.URL
}

func TestE2E_Quotes(t *testing.T) {
	base := startAPI(t)

	for _, path := range []string{"/api/crypto/price/BTC", "/api/stocks/quote/AAPL", "/api/etfs/quote/SPY"} {
		var out envelope[domain.AssetQuote]
		getJSON(t, base+path, &out)
		if !out.Success || out.Data.Price <= 0 {
			t.Fatalf("%s: unexpected quote %+v", path, out.Data)
		}
	}
}

func TestE2E_Listings(t *testing.T) {
	base := startAPI(t)

	var top envelope[[]domain.AssetQuote]
	getJSON(t, base+"/api/stocks/top?limit=10", &top)
	if len(top.Data) == 0 {
		t.Fatalf("empty stock listing")
	}

	var ov envelope[domain.MarketOverview]
	getJSON(t, base+"/api/market/overview", &ov)
	if ov.Data.Timestamp.IsZero() {
		t.Fatalf("overview has no timestamp")
	}

	var arts envelope[[]domain.Article]
	getJSON(t, base+"/api/news?category=crypto&limit=5", &arts)
	if len(arts.Data) == 0 || len(arts.Data) > 5 {
		t.Fatalf("unexpected article count %d", len(arts.Data))
	}
}

func waitForReady(t *testing.T, baseURL string) {
	t.Helper()
	deadline := time.Now().Add(readyTimeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/readyz")
		if err == nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(readyPollInterval)
	}
	t.Fatalf("API did not become ready within %s", readyTimeout)
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status for GET %s: got %d, want %d", url, resp.StatusCode, http.StatusOK)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode %s: %v", url, err)
	}
}
