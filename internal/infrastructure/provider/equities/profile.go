package equities

import (
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/fallback"
)

// Profile holds what differs between the stock and ETF listings served
// from the same upstream.
type Profile struct {
	Type domain.AssetType
	// QuoteType is the upstream search classification kept by Search.
	QuoteType string
	Fallback  *fallback.Set
	// Candidates caps how many fallback symbols a top listing fetches live.
	Candidates int
	BatchDelay time.Duration
	// AsyncTop answers top listings from static data at once and refreshes
	// the cache in the background.
	AsyncTop bool
}

func Stocks() Profile {
	return Profile{
		Type:       domain.AssetStock,
		QuoteType:  "EQUITY",
		Fallback:   fallback.Stocks(),
		Candidates: 20,
		BatchDelay: 300 * time.Millisecond,
		AsyncTop:   true,
	}
}

func ETFs() Profile {
	return Profile{
		Type:       domain.AssetETF,
		QuoteType:  "ETF",
		Fallback:   fallback.ETFs(),
		Candidates: 25,
		BatchDelay: 200 * time.Millisecond,
	}
}

var (
	moverSymbols   = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "AMD", "NFLX", "DIS"}
	popularSymbols = []string{"SPY", "QQQ", "IWM", "DIA", "VTI", "VOO", "GLD", "TLT", "EEM", "XLF"}
)

var periodDays = map[string]int{
	"1d":  1,
	"5d":  5,
	"1mo": 30,
	"3mo": 90,
	"6mo": 180,
	"1y":  365,
	"5y":  1825,
}

// PeriodDays maps a history period to a day count; unknown periods read as
// one month.
func PeriodDays(period string) int {
	if d, ok := periodDays[period]; ok {
		return d
	}
	return 30
}
