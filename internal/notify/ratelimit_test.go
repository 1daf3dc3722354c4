package notify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func countingNotifier(n *atomic.Int64) Notifier {
	return NotifierFunc(func(context.Context, []domain.Recipient, *AlertPayload) error {
		n.Add(1)
		return nil
	})
}

func TestRateLimited_DailyLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	var calls atomic.Int64
	r := NewRateLimited(countingNotifier(&calls), 1000, 10,
		WithDailyLimit(2),
		WithRateLimitNowFunc(func() time.Time { return now }),
	)
	ctx := context.Background()

	require.NoError(t, r.Notify(ctx, nil, testPayload(domain.SeverityHigh)))
	require.NoError(t, r.Notify(ctx, nil, testPayload(domain.SeverityHigh)))
	err := r.Notify(ctx, nil, testPayload(domain.SeverityHigh))
	require.ErrorIs(t, err, ErrDailyLimitReached)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, int64(2), r.DailyCount())

	now = now.Add(25 * time.Hour)
	assert.Equal(t, int64(0), r.DailyCount())
	require.NoError(t, r.Notify(ctx, nil, testPayload(domain.SeverityHigh)))
	assert.Equal(t, int64(3), calls.Load())
}

func TestRateLimited_ContextCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	r := NewRateLimited(countingNotifier(&calls), 0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, r.Notify(ctx, nil, testPayload(domain.SeverityHigh)))
	cancel()
	err := r.Notify(ctx, nil, testPayload(domain.SeverityHigh))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
	assert.Equal(t, int64(1), calls.Load())
}
