package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/msp-alert-engine/internal/directory"
	"github.com/donaldgifford/msp-alert-engine/internal/events"
	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	"github.com/donaldgifford/msp-alert-engine/internal/notify"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	"github.com/donaldgifford/msp-alert-engine/internal/telemetry"
	"github.com/donaldgifford/msp-alert-engine/pkg/rules"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const defaultWorkers = 8

// ErrEmptyBatch is returned when a sample batch contains no samples.
var ErrEmptyBatch = errors.New("sample batch is empty")

// Engine orchestrates ingestion, rule evaluation, alert lifecycle and
// escalation.
type Engine struct {
	store      store.Store
	dispatcher notify.Dispatcher
	directory  directory.Directory
	events     events.Publisher
	log        *slog.Logger

	now               func() time.Time
	tracer            trace.Tracer
	instruments       *telemetry.Instruments
	suppressionWindow time.Duration
	autoResolve       bool
	workers           int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	d notify.Dispatcher,
	dir directory.Directory,
	pub events.Publisher,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:      s,
		dispatcher: d,
		directory:  dir,
		events:     pub,
		log:        slog.Default(),
		now:        time.Now,
		tracer:     telemetry.Tracer(),
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithSuppressionWindow skips a firing when the same rule fired for the same
// device within d. Zero disables suppression.
func WithSuppressionWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.suppressionWindow = d
	}
}

// WithAutoResolve resolves open alerts once the newest sample of a batch no
// longer satisfies their rule.
func WithAutoResolve(enabled bool) EngineOption {
	return func(e *Engine) {
		e.autoResolve = enabled
	}
}

// WithWorkers bounds how many alerts an escalation scan processes at once.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithInstruments records OpenTelemetry metrics alongside Prometheus.
func WithInstruments(i *telemetry.Instruments) EngineOption {
	return func(e *Engine) {
		e.instruments = i
	}
}

// IngestResult summarizes one ingested batch.
type IngestResult struct {
	DeviceID     string                 `json:"device_id"`
	Accepted     int                    `json:"accepted"`
	RulesChecked int                    `json:"rules_checked"`
	Fired        int                    `json:"fired"`
	Alerts       []domain.AlertInstance `json:"alerts"`
	AutoResolved int                    `json:"auto_resolved"`
}

// IngestSamples ingests a batch received over HTTP.
func (eng *Engine) IngestSamples(
	ctx context.Context,
	deviceID string,
	samples []domain.MetricSample,
) (*IngestResult, error) {
	return eng.IngestSamplesFrom(ctx, "http", deviceID, samples)
}

// IngestSamplesFrom persists a device's samples, evaluates the device's
// applicable rules against them and records every firing. transport labels
// the ingestion metrics.
func (eng *Engine) IngestSamplesFrom(
	ctx context.Context,
	transport string,
	deviceID string,
	samples []domain.MetricSample,
) (*IngestResult, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBatch
	}

	ctx, span := eng.tracer.Start(ctx, "engine.IngestSamples", trace.WithAttributes(
		attribute.String("device_id", deviceID),
		attribute.String("transport", transport),
		attribute.Int("samples", len(samples)),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.IngestDuration.Observe(time.Since(start).Seconds())
	}()

	result, err := eng.ingest(ctx, deviceID, samples)
	if err != nil {
		metrics.IngestErrorsTotal.WithLabelValues(transport).Inc()
		span.RecordError(err)
		return nil, err
	}

	metrics.IngestSamplesTotal.WithLabelValues(transport).Add(float64(result.Accepted))
	eng.instruments.AddSamples(ctx, result.Accepted)
	span.SetAttributes(attribute.Int("fired", result.Fired))
	return result, nil
}

func (eng *Engine) ingest(
	ctx context.Context,
	deviceID string,
	samples []domain.MetricSample,
) (*IngestResult, error) {
	device, err := eng.store.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("resolving device %s: %w", deviceID, err)
	}

	now := eng.now()
	batch := make([]domain.MetricSample, len(samples))
	for i := range samples {
		batch[i] = samples[i]
		batch[i].DeviceID = device.ID
		if batch[i].CollectedAt.IsZero() {
			batch[i].CollectedAt = now
		}
	}

	accepted, err := eng.store.InsertSamples(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("storing samples: %w", err)
	}

	if latest := rules.Latest(batch); latest != nil {
		if err := eng.store.TouchDevice(ctx, device.ID, latest.CollectedAt); err != nil {
			eng.log.Warn("updating device last seen failed", "device_id", device.ID, "error", err)
		}
	}

	candidates, err := eng.store.FindApplicableRules(ctx, device.TenantID, device.ID)
	if err != nil {
		return nil, fmt.Errorf("finding rules for device %s: %w", device.ID, err)
	}
	applied := rules.ApplyPrecedence(candidates)

	metrics.RulesEvaluatedTotal.Add(float64(len(applied)))
	for i := range applied {
		if applied[i].Condition.Validate() != nil {
			metrics.MalformedRulesTotal.Inc()
		}
	}

	fired := rules.Evaluate(batch, applied, rules.WithLogger(eng.log))

	created, err := eng.RecordFired(ctx, device, fired)
	if err != nil {
		eng.log.Warn("some firings were not recorded",
			"device_id", device.ID,
			"fired", len(fired),
			"recorded", len(created),
			"error", err,
		)
	}

	result := &IngestResult{
		DeviceID:     device.ID,
		Accepted:     accepted,
		RulesChecked: len(applied),
		Fired:        len(fired),
		Alerts:       created,
	}

	if eng.autoResolve {
		result.AutoResolved = eng.resolveRecovered(ctx, device, applied, batch)
	}

	return result, nil
}

// RunRetention removes samples collected more than maxAge ago.
func (eng *Engine) RunRetention(ctx context.Context, maxAge time.Duration) (int, error) {
	n, err := eng.store.PurgeSamples(ctx, eng.now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("purging samples: %w", err)
	}
	metrics.RetentionPurgedTotal.Add(float64(n))
	eng.log.Info("sample retention complete", "purged", n, "max_age", maxAge)
	return n, nil
}

func (eng *Engine) publish(ctx context.Context, e domain.Event) {
	if eng.events == nil {
		return
	}
	if err := eng.events.Publish(ctx, e); err != nil {
		eng.log.Warn("publishing event failed",
			"type", e.Type,
			"alert_id", e.AlertID,
			"error", err,
		)
	}
}
