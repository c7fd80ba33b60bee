package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	RateLimitWindow time.Duration
	RateLimitMax    int
	// Upstreams
	BinanceAPIBase string
	YahooAPIBase   string
	RequestTimeout time.Duration
	// Cache
	CacheBackend     string
	CacheDefaultTTL  time.Duration
	CacheCheckPeriod time.Duration
	TTL              TTLs
	// Redis (shared cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	// Degraded mode and batching
	DegradedCooldown  time.Duration
	DegradedThreshold float64
	BatchSize         int
	StockBatchDelay   time.Duration
	ETFBatchDelay     time.Duration
	// Worker
	WarmerInterval time.Duration
}

// TTLs groups the per data kind cache lifetimes.
type TTLs struct {
	CryptoQuote time.Duration
	StockQuote  time.Duration
	History     time.Duration
	Search      time.Duration
	Fallback    time.Duration
	News        time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func atofDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func seconds(key string, def int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, ""), def)) * time.Second
}

func millis(key string, def int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, ""), def)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: millis("SHUTDOWN_TIMEOUT_MS", 10000),
		RateLimitWindow: millis("RATE_LIMIT_WINDOW_MS", 60000),
		RateLimitMax:    atoiDef(getEnv("RATE_LIMIT_MAX_REQUESTS", "100"), 100),
		BinanceAPIBase:  getEnv("BINANCE_API_BASE", "https://api.binance.com/api/v3"),
		YahooAPIBase:    getEnv("YAHOO_API_BASE", "https://query1.finance.yahoo.com"),
		RequestTimeout:  millis("REQUEST_TIMEOUT_MS", 5000),

		CacheBackend:     getEnv("CACHE_BACKEND", "memory"),
		CacheDefaultTTL:  seconds("CACHE_DEFAULT_TTL", 60),
		CacheCheckPeriod: seconds("CACHE_CHECK_PERIOD", 120),
		TTL: TTLs{
			CryptoQuote: seconds("CACHE_TTL_QUOTE", 30),
			StockQuote:  seconds("CACHE_TTL_STOCK_QUOTE", 60),
			History:     seconds("CACHE_TTL_HISTORY", 300),
			Search:      seconds("CACHE_TTL_SEARCH", 600),
			Fallback:    seconds("CACHE_TTL_FALLBACK", 300),
			News:        seconds("CACHE_TTL_NEWS", 300),
		},

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "marketdata:"),

		DegradedCooldown:  millis("DEGRADED_COOLDOWN_MS", 600000),
		DegradedThreshold: atofDef(getEnv("DEGRADED_THRESHOLD", "0.5"), 0.5),
		BatchSize:         atoiDef(getEnv("BATCH_SIZE", "5"), 5),
		StockBatchDelay:   millis("STOCK_BATCH_DELAY_MS", 300),
		ETFBatchDelay:     millis("ETF_BATCH_DELAY_MS", 200),

		WarmerInterval: millis("WARMER_INTERVAL_MS", 0),
	}
}
