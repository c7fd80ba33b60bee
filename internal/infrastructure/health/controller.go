package health

import (
	"sync"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	DefaultThreshold = 0.5
	DefaultCooldown  = 10 * time.Minute
)

// Controller tracks whether a provider is degraded. Entering degraded mode
// records a deadline; the deadline is compared against the clock on each
// read, so no timer goroutine is involved.
type Controller struct {
	name      string
	threshold float64
	cooldown  time.Duration
	clock     application.Clock
	log       *zap.Logger

	mu            sync.Mutex
	degradedUntil time.Time
}

type Option func(*Controller)

func WithClock(c application.Clock) Option { return func(h *Controller) { h.clock = c } }
func WithLogger(l *zap.Logger) Option { return func(h *Controller) { h.log = l } }
func WithThreshold(ratio float64) Option { return func(h *Controller) { h.threshold = ratio } }
func WithCooldown(d time.Duration) Option { return func(h *Controller) { h.cooldown = d } }

func New(name string, opts ...Option) *Controller {
	h := &Controller{name: name, threshold: DefaultThreshold, cooldown: DefaultCooldown}
	for _, opt := range opts {
		opt(h)
	}
	if h.clock == nil {
		h.clock = application.RealClock{}
	}
	h.log = logx.OrNop(h.log)
	if h.threshold <= 0 || h.threshold > 1 {
		h.threshold = DefaultThreshold
	}
	if h.cooldown <= 0 {
		h.cooldown = DefaultCooldown
	}
	return h
}

// Degraded reports whether live calls should be skipped right now.
func (h *Controller) Degraded() bool {
	now := h.clock.Now()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.degradedUntil.IsZero() {
		return false
	}
	if !now.Before(h.degradedUntil) {
		h.degradedUntil = time.Time{}
		h.log.Info("provider recovered from degraded mode", zap.String("provider", h.name))
		return false
	}
	return true
}

// Observe reports the outcome of one batched fetch. When failures exceed the
// threshold share of total the provider enters degraded mode for the
// cooldown. It returns true if this call tripped the controller.
func (h *Controller) Observe(failures, total int) bool {
	if total <= 0 || float64(failures) <= h.threshold*float64(total) {
		return false
	}
	until := h.clock.Now().Add(h.cooldown)
	h.mu.Lock()
	h.degradedUntil = until
	h.mu.Unlock()
	h.log.Warn("provider entering degraded mode",
		zap.String("provider", h.name),
		zap.Int("failures", failures),
		zap.Int("total", total),
		zap.Time("cooldown_until", until),
	)
	return true
}

// Remaining is the cooldown time left, or zero when not degraded.
func (h *Controller) Remaining() time.Duration {
	if !h.Degraded() {
		return 0
	}
	h.mu.Lock()
	until := h.degradedUntil
	h.mu.Unlock()
	if left := until.Sub(h.clock.Now()); left > 0 {
		return left
	}
	return 0
}

func (h *Controller) Snapshot() domain.ProviderHealth {
	snap := domain.ProviderHealth{Provider: h.name}
	if !h.Degraded() {
		return snap
	}
	h.mu.Lock()
	until := h.degradedUntil
	h.mu.Unlock()
	if until.IsZero() {
		return snap
	}
	snap.Degraded = true
	snap.CooldownUntil = &until
	return snap
}
