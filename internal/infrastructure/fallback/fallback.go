package fallback

import (
	"strings"
	"time"

	"marketdata-service/internal/domain"
)

type cryptoSeed struct {
	pair          string
	base          string
	price         float64
	changePercent float64
	quoteVolume   float64
	high          float64
	low           float64
}

type equitySeed struct {
	symbol        string
	name          string
	price         float64
	changePercent float64
	volume        float64
	marketCap     float64
}

// Set is a read-only, ordered dataset for one asset class. Every accessor
// returns fresh copies stamped with the caller's time.
type Set struct {
	quotes []domain.AssetQuote
	index  map[string]int
}

var (
	cryptoSet = newSet(cryptoQuotes())
	stockSet  = newSet(equityQuotes(domain.AssetStock, stockSeeds))
	etfSet    = newSet(equityQuotes(domain.AssetETF, etfSeeds))
)

func Crypto() *Set { return cryptoSet }
func Stocks() *Set { return stockSet }
func ETFs() *Set { return etfSet }

func newSet(quotes []domain.AssetQuote) *Set {
	s := &Set{quotes: quotes, index: make(map[string]int, len(quotes))}
	for i, q := range quotes {
		s.index[q.Symbol] = i
	}
	return s
}

func (s *Set) Len() int { return len(s.quotes) }

func (s *Set) Symbols() []string {
	out := make([]string, len(s.quotes))
	for i, q := range s.quotes {
		out[i] = q.Symbol
	}
	return out
}

// Top returns the first min(limit, Len) entries; a non-positive limit returns all.
func (s *Set) Top(limit int, now time.Time) []domain.AssetQuote {
	if limit <= 0 || limit > len(s.quotes) {
		limit = len(s.quotes)
	}
	out := make([]domain.AssetQuote, limit)
	for i := range out {
		out[i] = stamp(s.quotes[i], now)
	}
	return out
}

// Lookup is the single place that decides whether static data exists for a
// symbol.
func (s *Set) Lookup(symbol string, now time.Time) (domain.AssetQuote, bool) {
	i, ok := s.index[strings.ToUpper(symbol)]
	if !ok {
		return domain.AssetQuote{}, false
	}
	return stamp(s.quotes[i], now), true
}

func stamp(q domain.AssetQuote, now time.Time) domain.AssetQuote {
	q.Timestamp = now
	q.MarketCap = clone(q.MarketCap)
	q.High = clone(q.High)
	q.Low = clone(q.Low)
	q.QuoteVolume = clone(q.QuoteVolume)
	return q
}

func clone(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cryptoQuotes() []domain.AssetQuote {
	out := make([]domain.AssetQuote, len(cryptoSeeds))
	for i, s := range cryptoSeeds {
		out[i] = domain.AssetQuote{
			Type:          domain.AssetCrypto,
			Symbol:        s.pair,
			Name:          s.base,
			BaseAsset:     s.base,
			Price:         s.price,
			Change:        s.price * s.changePercent / 100,
			ChangePercent: s.changePercent,
			Volume:        s.quoteVolume / s.price,
			QuoteVolume:   domain.F(s.quoteVolume),
			High:          domain.F(s.high),
			Low:           domain.F(s.low),
			Source:        domain.SourceFallback,
		}
	}
	return out
}

func equityQuotes(t domain.AssetType, seeds []equitySeed) []domain.AssetQuote {
	out := make([]domain.AssetQuote, len(seeds))
	for i, s := range seeds {
		q := domain.AssetQuote{
			Type:          t,
			Symbol:        s.symbol,
			Name:          s.name,
			Price:         s.price,
			Change:        s.price * s.changePercent / 100,
			ChangePercent: s.changePercent,
			Volume:        s.volume,
			Source:        domain.SourceFallback,
		}
		if s.marketCap > 0 {
			q.MarketCap = domain.F(s.marketCap)
		}
		out[i] = q
	}
	return out
}
