package fallback

import (
	"testing"
	"time"

	"marketdata-service/internal/domain"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestDatasets_Sizes(t *testing.T) {
	t.Parallel()
	require.Equal(t, 20, Crypto().Len())
	require.Equal(t, 50, Stocks().Len())
	require.Equal(t, 25, ETFs().Len())
	require.Len(t, News(now), 3)
}

func TestTop_LimitsAndTags(t *testing.T) {
	t.Parallel()
	top := Stocks().Top(3, now)
	require.Len(t, top, 3)
	require.Equal(t, []string{"AAPL", "MSFT", "GOOGL"}, []string{top[0].Symbol, top[1].Symbol, top[2].Symbol})
	for _, q := range top {
		require.Equal(t, domain.SourceFallback, q.Source)
		require.Equal(t, domain.AssetStock, q.Type)
		require.Equal(t, now, q.Timestamp)
	}

	require.Len(t, ETFs().Top(100, now), 25)
	require.Len(t, ETFs().Top(0, now), 25)
}

func TestLookup_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()
	a, ok := Crypto().Lookup("btcusdt", now)
	require.True(t, ok)
	require.Equal(t, "BTC", a.Name)
	require.InDelta(t, 95141.87*2.34/100, a.Change, 1e-6)
	require.InDelta(t, 28500000000/95141.87, a.Volume, 1e-6)
	require.Nil(t, a.MarketCap)

	*a.High = 0
	b, _ := Crypto().Lookup("BTCUSDT", now)
	require.InDelta(t, 96200, *b.High, 1e-9)

	_, ok = Crypto().Lookup("NOPEUSDT", now)
	require.False(t, ok)
}

func TestEquityFallback_MarketCapOnlyForStocks(t *testing.T) {
	t.Parallel()
	aapl, ok := Stocks().Lookup("AAPL", now)
	require.True(t, ok)
	require.NotNil(t, aapl.MarketCap)

	spy, ok := ETFs().Lookup("SPY", now)
	require.True(t, ok)
	require.Nil(t, spy.MarketCap)
}
