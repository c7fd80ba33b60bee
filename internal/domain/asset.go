package domain

import (
	"fmt"
	"strings"
	"time"
)

type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetETF    AssetType = "etf"
	AssetCrypto AssetType = "crypto"
)

func ParseAssetType(s string) (AssetType, error) {
	switch t := AssetType(strings.ToLower(strings.TrimSpace(s))); t {
	case AssetStock, AssetETF, AssetCrypto:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAssetType, s)
	}
}

// Source tags where a quote came from.
type Source string

const (
	SourceBinance  Source = "binance"
	SourceYahoo    Source = "yahoo"
	SourceFallback Source = "fallback"
)

// AssetQuote is the normalized quote shared by every asset class. Pointer
// fields are absent when the provider does not report them.
type AssetQuote struct {
	Type          AssetType `json:"type"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        float64   `json:"volume"`
	MarketCap     *float64  `json:"marketCap,omitempty"`
	High          *float64  `json:"high,omitempty"`
	Low           *float64  `json:"low,omitempty"`
	Open          *float64  `json:"open,omitempty"`
	PreviousClose *float64  `json:"previousClose,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Source        Source    `json:"source,omitempty"`

	// equities
	FiftyTwoWeekHigh *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow  *float64 `json:"fiftyTwoWeekLow,omitempty"`
	AvgVolume        *float64 `json:"avgVolume,omitempty"`
	PERatio          *float64 `json:"pe,omitempty"`
	EPS              *float64 `json:"eps,omitempty"`
	DividendYield    *float64 `json:"dividendYield,omitempty"`
	YTDReturn        *float64 `json:"ytdReturn,omitempty"`
	ThreeYearReturn  *float64 `json:"threeYearReturn,omitempty"`
	FiveYearReturn   *float64 `json:"fiveYearReturn,omitempty"`

	// crypto
	BaseAsset   string   `json:"baseAsset,omitempty"`
	QuoteVolume *float64 `json:"quoteVolume,omitempty"`
	Trades      *int64   `json:"trades,omitempty"`
}

// HistoryPoint is one OHLCV candle. Sequences are ordered oldest first.
type HistoryPoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

type SearchResult struct {
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Exchange   string    `json:"exchange,omitempty"`
	QuoteAsset string    `json:"quoteAsset,omitempty"`
	Status     string    `json:"status,omitempty"`
	Type       AssetType `json:"type"`
}

// Instrument is exchange metadata for a crypto trading pair.
type Instrument struct {
	Symbol     string `json:"symbol"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
	Status     string `json:"status"`
}

type Movers struct {
	Gainers []AssetQuote `json:"gainers"`
	Losers  []AssetQuote `json:"losers"`
}

// ProviderHealth is a point-in-time view of a provider's degraded state.
type ProviderHealth struct {
	Provider      string     `json:"provider"`
	Degraded      bool       `json:"degraded"`
	CooldownUntil *time.Time `json:"cooldownUntil,omitempty"`
}

// F returns a pointer to v, for optional quote fields.
func F(v float64) *float64 { return &v }

// FundHoldings is the composition of an ETF. Weights are fractions of the
// fund, so 0.07 is seven percent.
type FundHoldings struct {
	Symbol           string         `json:"symbol"`
	Holdings         []Holding      `json:"holdings"`
	SectorWeightings []SectorWeight `json:"sectorWeightings"`
	Category         string         `json:"category,omitempty"`
	Family           string         `json:"family,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

type Holding struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type SectorWeight struct {
	Sector string  `json:"sector"`
	Weight float64 `json:"weight"`
}
