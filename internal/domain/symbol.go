package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// CryptoQuoteAsset is the quote currency every crypto pair is priced in.
const CryptoQuoteAsset = "USDT"

var symbolRe = regexp.MustCompile(`^[A-Z0-9^][A-Z0-9.\-=^]{0,19}$`)

// NormalizeSymbol upper-cases and validates a ticker symbol.
func NormalizeSymbol(s string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(s))
	if !symbolRe.MatchString(sym) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return sym, nil
}

// CryptoPair returns the exchange pair for a crypto symbol, so BTC and
// BTCUSDT both resolve to BTCUSDT.
func CryptoPair(s string) (string, error) {
	sym, err := NormalizeSymbol(s)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(sym, CryptoQuoteAsset) {
		sym += CryptoQuoteAsset
	}
	return sym, nil
}

// CryptoBase strips the quote currency from a pair.
func CryptoBase(pair string) string {
	if base := strings.TrimSuffix(pair, CryptoQuoteAsset); base != "" {
		return base
	}
	return pair
}
