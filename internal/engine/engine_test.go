package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dirMocks "github.com/donaldgifford/msp-alert-engine/internal/directory/mocks"
	eventMocks "github.com/donaldgifford/msp-alert-engine/internal/events/mocks"
	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	notifyMocks "github.com/donaldgifford/msp-alert-engine/internal/notify/mocks"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	storeMocks "github.com/donaldgifford/msp-alert-engine/internal/store/mocks"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var baseTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type testDeps struct {
	store      *storeMocks.MockStore
	dispatcher *notifyMocks.MockDispatcher
	directory  *dirMocks.MockDirectory
	events     *eventMocks.MockPublisher
}

func newTestEngine(t *testing.T, now time.Time, opts ...EngineOption) (*Engine, *testDeps) {
	t.Helper()
	deps := &testDeps{
		store:      storeMocks.NewMockStore(t),
		dispatcher: notifyMocks.NewMockDispatcher(t),
		directory:  dirMocks.NewMockDirectory(t),
		events:     eventMocks.NewMockPublisher(t),
	}
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return now }),
	}, opts...)
	eng := NewEngine(deps.store, deps.dispatcher, deps.directory, deps.events, opts...)
	return eng, deps
}

func testDevice() *domain.Device {
	return &domain.Device{ID: "D1", TenantID: "acme", Hostname: "web-01"}
}

func cpuRule(id string, deviceID *string) domain.AlertRule {
	return domain.AlertRule{
		ID:        id,
		TenantID:  "acme",
		Name:      "High CPU",
		Severity:  domain.SeverityHigh,
		DeviceID:  deviceID,
		IsActive:  true,
		Condition: domain.Condition{Metric: "cpu_percent", Operator: domain.OpGreater, Threshold: ptr(90.0)},
		CreatedAt: baseTime.Add(-24 * time.Hour),
	}
}

func cpuSample(v float64, at time.Time) domain.MetricSample {
	return domain.MetricSample{CollectedAt: at, Values: map[string]any{"cpu_percent": v}}
}

// expectIngest wires the store calls every successful ingestion makes.
func expectIngest(d *testDeps, n int, applicable []domain.AlertRule) {
	d.store.EXPECT().GetDevice(mock.Anything, "D1").Return(testDevice(), nil).Once()
	d.store.EXPECT().InsertSamples(mock.Anything, mock.Anything).Return(n, nil).Once()
	d.store.EXPECT().TouchDevice(mock.Anything, "D1", mock.Anything).Return(nil).Once()
	d.store.EXPECT().FindApplicableRules(mock.Anything, "acme", "D1").Return(applicable, nil).Once()
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	eng := NewEngine(storeMocks.NewMockStore(t), nil, nil, nil)
	assert.Equal(t, defaultWorkers, eng.workers)
	assert.Zero(t, eng.suppressionWindow)
	assert.False(t, eng.autoResolve)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.tracer)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	eng := NewEngine(storeMocks.NewMockStore(t), nil, nil, nil,
		WithLogger(l),
		WithSuppressionWindow(10*time.Minute),
		WithAutoResolve(true),
		WithWorkers(3),
		WithWorkers(0),
	)
	assert.Same(t, l, eng.log)
	assert.Equal(t, 10*time.Minute, eng.suppressionWindow)
	assert.True(t, eng.autoResolve)
	assert.Equal(t, 3, eng.workers)
}

func TestIngestSamples_CPUAboveThresholdCreatesActiveAlert(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	rule := cpuRule("r-cpu", nil)
	expectIngest(d, 1, []domain.AlertRule{rule})

	d.store.EXPECT().
		CreateAlertInstance(mock.Anything, mock.MatchedBy(func(a *domain.AlertInstance) bool {
			return a.RuleID == "r-cpu" && a.DeviceID == "D1" && a.TenantID == "acme" &&
				a.MetricValue == 95 && a.ThresholdValue == 90 &&
				a.Status == domain.AlertActive && a.TriggeredAt.Equal(baseTime)
		})).
		Run(func(_ context.Context, a *domain.AlertInstance) { a.ID = "alert-1" }).
		Return(nil).Once()
	d.store.EXPECT().IncrementRuleTrigger(mock.Anything, "r-cpu", baseTime).Return(nil).Once()
	d.events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventAlertCreated && e.AlertID == "alert-1"
		})).
		Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.AlertsCreatedTotal.WithLabelValues("high"))

	res, err := eng.IngestSamples(context.Background(), "D1",
		[]domain.MetricSample{cpuSample(95, baseTime.Add(-time.Minute))})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 1, res.Fired)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, "alert-1", res.Alerts[0].ID)
	assert.Equal(t, "High CPU: cpu_percent is 95 (threshold > 90)", res.Alerts[0].Message)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.AlertsCreatedTotal.WithLabelValues("high")), before+1)
}

func TestIngestSamples_CPUBelowThresholdNoAlert(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	expectIngest(d, 1, []domain.AlertRule{cpuRule("r-cpu", nil)})

	res, err := eng.IngestSamples(context.Background(), "D1",
		[]domain.MetricSample{cpuSample(80, baseTime)})
	require.NoError(t, err)
	assert.Zero(t, res.Fired)
	assert.Empty(t, res.Alerts)
	d.store.AssertNotCalled(t, "CreateAlertInstance", mock.Anything, mock.Anything)
	d.store.AssertNotCalled(t, "IncrementRuleTrigger", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestSamples_EveryMatchingSampleFires(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	expectIngest(d, 3, []domain.AlertRule{cpuRule("r-cpu", nil)})
	d.store.EXPECT().CreateAlertInstance(mock.Anything, mock.Anything).Return(nil).Times(2)
	d.store.EXPECT().IncrementRuleTrigger(mock.Anything, "r-cpu", mock.Anything).Return(nil).Times(2)
	d.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)

	res, err := eng.IngestSamples(context.Background(), "D1", []domain.MetricSample{
		cpuSample(95, baseTime.Add(-2*time.Minute)),
		cpuSample(50, baseTime.Add(-time.Minute)),
		cpuSample(99, baseTime),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fired)
	assert.Len(t, res.Alerts, 2)
}

func TestIngestSamples_DeviceRuleShadowsGlobal(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	global := cpuRule("r-global", nil)
	device := cpuRule("r-device", ptr("D1"))
	device.Condition.Threshold = ptr(97.0)
	expectIngest(d, 1, []domain.AlertRule{device, global})

	res, err := eng.IngestSamples(context.Background(), "D1",
		[]domain.MetricSample{cpuSample(95, baseTime)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.RulesChecked)
	assert.Zero(t, res.Fired, "95 is below the device-specific threshold")
}

func TestIngestSamples_MalformedRuleDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	bad := cpuRule("r-bad", nil)
	bad.Condition.Operator = domain.Operator("!=")
	bad.Condition.Metric = "memory_percent"
	good := cpuRule("r-good", nil)
	expectIngest(d, 1, []domain.AlertRule{bad, good})

	d.store.EXPECT().CreateAlertInstance(mock.Anything, mock.Anything).Return(nil).Once()
	d.store.EXPECT().IncrementRuleTrigger(mock.Anything, "r-good", mock.Anything).Return(nil).Once()
	d.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := eng.IngestSamples(context.Background(), "D1", []domain.MetricSample{{
		CollectedAt: baseTime,
		Values:      map[string]any{"cpu_percent": 95.0, "memory_percent": 99.0},
	}})
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, "r-good", res.Alerts[0].RuleID)
}

func TestIngestSamples_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		eng, _ := newTestEngine(t, baseTime)
		_, err := eng.IngestSamples(context.Background(), "D1", nil)
		require.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("unknown device", func(t *testing.T) {
		t.Parallel()
		eng, d := newTestEngine(t, baseTime)
		d.store.EXPECT().GetDevice(mock.Anything, "nope").Return(nil, store.ErrNotFound).Once()
		_, err := eng.IngestSamplesFrom(context.Background(), "mqtt", "nope",
			[]domain.MetricSample{cpuSample(95, baseTime)})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("insert failure", func(t *testing.T) {
		t.Parallel()
		eng, d := newTestEngine(t, baseTime)
		d.store.EXPECT().GetDevice(mock.Anything, "D1").Return(testDevice(), nil).Once()
		d.store.EXPECT().InsertSamples(mock.Anything, mock.Anything).Return(0, errors.New("copy failed")).Once()
		_, err := eng.IngestSamples(context.Background(), "D1",
			[]domain.MetricSample{cpuSample(95, baseTime)})
		require.ErrorContains(t, err, "copy failed")
	})
}

func TestIngestSamples_StampsDeviceAndTime(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	d.store.EXPECT().GetDevice(mock.Anything, "D1").Return(testDevice(), nil).Once()
	d.store.EXPECT().
		InsertSamples(mock.Anything, mock.MatchedBy(func(s []domain.MetricSample) bool {
			return len(s) == 1 && s[0].DeviceID == "D1" && s[0].CollectedAt.Equal(baseTime)
		})).
		Return(1, nil).Once()
	d.store.EXPECT().TouchDevice(mock.Anything, "D1", baseTime).Return(nil).Once()
	d.store.EXPECT().FindApplicableRules(mock.Anything, "acme", "D1").Return(nil, nil).Once()

	_, err := eng.IngestSamples(context.Background(), "D1", []domain.MetricSample{{
		DeviceID: "spoofed",
		Values:   map[string]any{"cpu_percent": 10},
	}})
	require.NoError(t, err)
}

func TestRunRetention(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	d.store.EXPECT().PurgeSamples(mock.Anything, baseTime.Add(-72*time.Hour)).Return(12, nil).Once()

	n, err := eng.RunRetention(context.Background(), 72*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
