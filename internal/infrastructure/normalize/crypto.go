package normalize

import (
	"fmt"
	"sort"
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/binance"

	"github.com/shopspring/decimal"
)

// BinanceTicker maps 24hr statistics to a crypto quote. now is used when the
// payload carries no close time.
func BinanceTicker(t binance.Ticker, now time.Time) (domain.AssetQuote, error) {
	price := parse(t.LastPrice)
	if price == nil {
		return domain.AssetQuote{}, fmt.Errorf("ticker %s: last price %q: %w", t.Symbol, t.LastPrice, domain.ErrMalformed)
	}
	base := domain.CryptoBase(t.Symbol)
	q := domain.AssetQuote{
		Type:          domain.AssetCrypto,
		Symbol:        t.Symbol,
		Name:          base,
		BaseAsset:     base,
		Price:         *price,
		Change:        orZero(parse(t.PriceChange)),
		ChangePercent: orZero(parse(t.PriceChangePercent)),
		Volume:        orZero(parse(t.Volume)),
		QuoteVolume:   parse(t.QuoteVolume),
		High:          parse(t.HighPrice),
		Low:           parse(t.LowPrice),
		Open:          parse(t.OpenPrice),
		PreviousClose: parse(t.PrevClosePrice),
		Timestamp:     now,
		Source:        domain.SourceBinance,
	}
	if t.CloseTime > 0 {
		q.Timestamp = time.UnixMilli(t.CloseTime).UTC()
	}
	if t.Count > 0 {
		n := t.Count
		q.Trades = &n
	}
	return q, nil
}

// BinanceKlines maps candles to history points, oldest first.
func BinanceKlines(ks []binance.Kline) ([]domain.HistoryPoint, error) {
	out := make([]domain.HistoryPoint, 0, len(ks))
	for _, k := range ks {
		vals := make([]float64, 5)
		for i, s := range []string{k.Open, k.High, k.Low, k.Close, k.Volume} {
			v := parse(s)
			if v == nil {
				return nil, fmt.Errorf("kline %d: field %d %q: %w", k.OpenTime, i, s, domain.ErrMalformed)
			}
			vals[i] = *v
		}
		out = append(out, domain.HistoryPoint{
			Date:   time.UnixMilli(k.OpenTime).UTC(),
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func BinanceSymbol(s binance.SymbolInfo) domain.SearchResult {
	return domain.SearchResult{
		Symbol:     s.Symbol,
		Name:       s.BaseAsset,
		Exchange:   "Binance",
		QuoteAsset: s.QuoteAsset,
		Status:     s.Status,
		Type:       domain.AssetCrypto,
	}
}

func BinanceInstrument(s binance.SymbolInfo) domain.Instrument {
	return domain.Instrument{
		Symbol:     s.Symbol,
		BaseAsset:  s.BaseAsset,
		QuoteAsset: s.QuoteAsset,
		Status:     s.Status,
	}
}

// parse reads a decimal string; empty or invalid input is absent.
func parse(s string) *float64 {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
