package yahoo

// Quote is one entry of the v7 quote response. Pointer fields are absent
// when the upstream omits them.
type Quote struct {
	Symbol                     string   `json:"symbol"`
	QuoteType                  string   `json:"quoteType"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
	Exchange                   string   `json:"fullExchangeName"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketChange        *float64 `json:"regularMarketChange"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	RegularMarketVolume        *float64 `json:"regularMarketVolume"`
	RegularMarketDayHigh       *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        *float64 `json:"regularMarketDayLow"`
	RegularMarketOpen          *float64 `json:"regularMarketOpen"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	RegularMarketTime          *int64   `json:"regularMarketTime"`
	MarketCap                  *float64 `json:"marketCap"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow"`
	AverageDailyVolume3Month   *float64 `json:"averageDailyVolume3Month"`
	TrailingPE                 *float64 `json:"trailingPE"`
	EpsTrailingTwelveMonths    *float64 `json:"epsTrailingTwelveMonths"`
	DividendYield              *float64 `json:"dividendYield"`
	YTDReturn                  *float64 `json:"ytdReturn"`
	ThreeYearAverageReturn     *float64 `json:"threeYearAverageReturn"`
	FiveYearAverageReturn      *float64 `json:"fiveYearAverageReturn"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []Quote   `json:"result"`
		Error  *apiError `json:"error"`
	} `json:"quoteResponse"`
}

// ChartResult is one series of the v8 chart response. Indicator arrays are
// parallel to Timestamp and may contain nulls for missing candles.
type ChartResult struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
}

type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type chartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	ExchDisp  string `json:"exchDisp"`
	QuoteType string `json:"quoteType"`
}

type searchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// RawValue is Yahoo's formatted number; only the raw value is kept.
type RawValue struct {
	Raw *float64 `json:"raw"`
}

// QuoteSummary holds the fund modules of the v10 quoteSummary response.
// A module the upstream does not return is nil.
type QuoteSummary struct {
	TopHoldings *TopHoldings `json:"topHoldings"`
	FundProfile *FundProfile `json:"fundProfile"`
}

type TopHoldings struct {
	Holdings []Holding `json:"holdings"`
	// each entry holds a single sector name
	SectorWeightings []map[string]RawValue `json:"sectorWeightings"`
}

type Holding struct {
	Symbol         string   `json:"symbol"`
	HoldingName    string   `json:"holdingName"`
	HoldingPercent RawValue `json:"holdingPercent"`
}

type FundProfile struct {
	CategoryName string `json:"categoryName"`
	Family       string `json:"family"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummary `json:"result"`
		Error  *apiError      `json:"error"`
	} `json:"quoteSummary"`
}
