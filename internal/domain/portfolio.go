package domain

import (
	"encoding/json"
	"time"
)

type PortfolioItem struct {
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
}

// PortfolioEntry is either a resolved quote or the error for one item.
type PortfolioEntry struct {
	Symbol string
	Type   string
	Quote  *AssetQuote
	Err    string
}

func (e PortfolioEntry) Failed() bool { return e.Err != "" || e.Quote == nil }

func (e PortfolioEntry) MarshalJSON() ([]byte, error) {
	if e.Failed() {
		msg := e.Err
		if msg == "" {
			msg = "no data"
		}
		return json.Marshal(struct {
			Symbol string `json:"symbol"`
			Type   string `json:"type"`
			Error  string `json:"error"`
		}{e.Symbol, e.Type, msg})
	}
	return json.Marshal(e.Quote)
}

type TypeCounts struct {
	Stocks int `json:"stocks"`
	ETFs   int `json:"etfs"`
	Crypto int `json:"crypto"`
}

type PortfolioStats struct {
	TotalValue         float64    `json:"totalValue"`
	TotalChange        float64    `json:"totalChange"`
	TotalChangePercent float64    `json:"totalChangePercent"`
	AssetCount         int        `json:"assetCount"`
	ByType             TypeCounts `json:"byType"`
}

type MarketOverview struct {
	Stocks    Movers            `json:"stocks"`
	ETFs      []AssetQuote      `json:"etfs"`
	Crypto    []AssetQuote      `json:"crypto"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type SearchAllResult struct {
	Stocks []SearchResult `json:"stocks"`
	ETFs   []SearchResult `json:"etfs"`
	Crypto []SearchResult `json:"crypto"`
}
