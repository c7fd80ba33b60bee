package normalize

import (
	"fmt"
	"sort"
	"time"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/yahoo"
)

// YahooQuote maps a quote to a stock or ETF record. Only stocks carry a
// market cap.
func YahooQuote(y yahoo.Quote, t domain.AssetType, now time.Time) (domain.AssetQuote, error) {
	if y.RegularMarketPrice == nil {
		return domain.AssetQuote{}, fmt.Errorf("quote %s: no price: %w", y.Symbol, domain.ErrMalformed)
	}
	q := domain.AssetQuote{
		Type:             t,
		Symbol:           y.Symbol,
		Name:             firstNonEmpty(y.LongName, y.ShortName, y.Symbol),
		Price:            *y.RegularMarketPrice,
		Change:           orZero(y.RegularMarketChange),
		ChangePercent:    orZero(y.RegularMarketChangePercent),
		Volume:           orZero(y.RegularMarketVolume),
		High:             copyF(y.RegularMarketDayHigh),
		Low:              copyF(y.RegularMarketDayLow),
		Open:             copyF(y.RegularMarketOpen),
		PreviousClose:    copyF(y.RegularMarketPreviousClose),
		Timestamp:        now,
		Source:           domain.SourceYahoo,
		FiftyTwoWeekHigh: copyF(y.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  copyF(y.FiftyTwoWeekLow),
		AvgVolume:        copyF(y.AverageDailyVolume3Month),
		PERatio:          copyF(y.TrailingPE),
		EPS:              copyF(y.EpsTrailingTwelveMonths),
		DividendYield:    copyF(y.DividendYield),
		YTDReturn:        copyF(y.YTDReturn),
		ThreeYearReturn:  copyF(y.ThreeYearAverageReturn),
		FiveYearReturn:   copyF(y.FiveYearAverageReturn),
	}
	if t == domain.AssetStock {
		q.MarketCap = copyF(y.MarketCap)
	}
	if y.RegularMarketTime != nil && *y.RegularMarketTime > 0 {
		q.Timestamp = time.Unix(*y.RegularMarketTime, 0).UTC()
	}
	return q, nil
}

// YahooChart maps a chart series to history points. Candles with a missing
// open, high, low or close are dropped; a missing volume reads as zero.
func YahooChart(r yahoo.ChartResult) []domain.HistoryPoint {
	if len(r.Indicators.Quote) == 0 {
		return []domain.HistoryPoint{}
	}
	ind := r.Indicators.Quote[0]
	out := make([]domain.HistoryPoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, c := at(ind.Open, i), at(ind.High, i), at(ind.Low, i), at(ind.Close, i)
		if o == nil || h == nil || l == nil || c == nil {
			continue
		}
		out = append(out, domain.HistoryPoint{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: orZero(at(ind.Volume, i)),
		})
	}
	return out
}

func YahooSearch(s yahoo.SearchQuote, t domain.AssetType) domain.SearchResult {
	return domain.SearchResult{
		Symbol:   s.Symbol,
		Name:     firstNonEmpty(s.LongName, s.ShortName, s.Symbol),
		Exchange: firstNonEmpty(s.ExchDisp, s.Exchange),
		Type:     t,
	}
}

// YahooHoldings maps the fund modules of a quote summary. Sector weightings
// keep the upstream order; a module the upstream left out yields empty lists.
func YahooHoldings(symbol string, s yahoo.QuoteSummary, now time.Time) domain.FundHoldings {
	h := domain.FundHoldings{
		Symbol:           symbol,
		Holdings:         []domain.Holding{},
		SectorWeightings: []domain.SectorWeight{},
		Timestamp:        now,
	}
	if top := s.TopHoldings; top != nil {
		for _, x := range top.Holdings {
			h.Holdings = append(h.Holdings, domain.Holding{
				Symbol: x.Symbol,
				Name:   firstNonEmpty(x.HoldingName, x.Symbol),
				Weight: orZero(x.HoldingPercent.Raw),
			})
		}
		for _, m := range top.SectorWeightings {
			sectors := make([]string, 0, len(m))
			for k := range m {
				sectors = append(sectors, k)
			}
			sort.Strings(sectors)
			for _, k := range sectors {
				h.SectorWeightings = append(h.SectorWeightings, domain.SectorWeight{Sector: k, Weight: orZero(m[k].Raw)})
			}
		}
	}
	if p := s.FundProfile; p != nil {
		h.Category = p.CategoryName
		h.Family = p.Family
	}
	return h
}

func at(vals []*float64, i int) *float64 {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}

func copyF(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
