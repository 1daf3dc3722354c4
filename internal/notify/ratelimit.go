package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ErrDailyLimitReached is returned when the rolling 24-hour send quota is
// exhausted.
var ErrDailyLimitReached = errors.New("daily notification limit reached")

// RateLimited wraps a Notifier with a token bucket and an optional rolling
// 24-hour cap on sends. Each Notify call counts as one send.
type RateLimited struct {
	next     Notifier
	limiter  *rate.Limiter
	maxDaily int64

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
	nowFunc func() time.Time
}

// RateLimitOption configures RateLimited.
type RateLimitOption func(*RateLimited)

// WithDailyLimit caps sends per rolling 24 hours. Zero means unlimited.
func WithDailyLimit(n int64) RateLimitOption {
	return func(r *RateLimited) { r.maxDaily = n }
}

// WithRateLimitNowFunc overrides the time function for testing.
func WithRateLimitNowFunc(f func() time.Time) RateLimitOption {
	return func(r *RateLimited) { r.nowFunc = f }
}

// NewRateLimited wraps next with perSecond/burst limiting.
func NewRateLimited(next Notifier, perSecond float64, burst int, opts ...RateLimitOption) *RateLimited {
	r := &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Notify waits for a token, then forwards to the wrapped notifier.
func (r *RateLimited) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	if err := r.reserveDaily(); err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return r.next.Notify(ctx, recipients, alert)
}

// DailyCount returns the sends counted in the current window.
func (r *RateLimited) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindow()
	return r.daily
}

func (r *RateLimited) reserveDaily() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindow()
	if r.maxDaily > 0 && r.daily >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily, r.maxDaily)
	}
	r.daily++
	return nil
}

// rollWindow must be called with mu held.
func (r *RateLimited) rollWindow() {
	now := r.nowFunc()
	if now.Before(r.resetAt) {
		return
	}
	r.daily = 0
	r.resetAt = now.Add(24 * time.Hour)
}
