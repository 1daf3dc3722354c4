// Package telemetry configures OpenTelemetry trace and metric export over
// OTLP gRPC.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/donaldgifford/msp-alert-engine/internal/config"
)

const instrumentationName = "github.com/donaldgifford/msp-alert-engine"

// ShutdownFunc flushes and stops the providers.
type ShutdownFunc func(context.Context) error

// Setup installs global trace and metric providers exporting to
// cfg.Endpoint. When telemetry is disabled the global no-op providers are
// left in place and the returned ShutdownFunc does nothing.
func Setup(ctx context.Context, cfg config.TelemetryConfig, version string, log *slog.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res := Resource(cfg.ServiceName, version)

	var dialOpts []grpc.DialOption
	if cfg.Insecure {
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	traceExp, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithDialOption(dialOpts...),
	))
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	metricExp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithDialOption(dialOpts...),
	)
	if err != nil {
		_ = traceExp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp, sdkmetric.WithInterval(cfg.Interval))),
		sdkmetric.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Warn("otel export error", "error", err)
	}))

	log.Info("telemetry enabled", "endpoint", cfg.Endpoint, "service", cfg.ServiceName)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// Resource describes this process.
func Resource(serviceName, version string) *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
}

// Tracer returns the engine's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Instruments are the OTel counterparts of the hot-path Prometheus metrics.
type Instruments struct {
	SamplesIngested metric.Int64Counter
	AlertsCreated   metric.Int64Counter
	StepsExecuted   metric.Int64Counter
	ScanDuration    metric.Float64Histogram
}

// NewInstruments creates instruments on the global meter provider.
func NewInstruments() (*Instruments, error) {
	return newInstruments(otel.Meter(instrumentationName))
}

func newInstruments(m metric.Meter) (*Instruments, error) {
	samples, err := m.Int64Counter("mae.samples.ingested",
		metric.WithDescription("Metric samples accepted for evaluation."))
	if err != nil {
		return nil, fmt.Errorf("creating samples counter: %w", err)
	}
	alerts, err := m.Int64Counter("mae.alerts.created",
		metric.WithDescription("Alert instances created."))
	if err != nil {
		return nil, fmt.Errorf("creating alerts counter: %w", err)
	}
	steps, err := m.Int64Counter("mae.escalation.steps",
		metric.WithDescription("Escalation steps executed."))
	if err != nil {
		return nil, fmt.Errorf("creating steps counter: %w", err)
	}
	scan, err := m.Float64Histogram("mae.escalation.scan.duration",
		metric.WithDescription("Escalation scan duration."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("creating scan histogram: %w", err)
	}
	return &Instruments{
		SamplesIngested: samples,
		AlertsCreated:   alerts,
		StepsExecuted:   steps,
		ScanDuration:    scan,
	}, nil
}

// RecordScan records a scan duration.
func (i *Instruments) RecordScan(ctx context.Context, d time.Duration) {
	if i == nil {
		return
	}
	i.ScanDuration.Record(ctx, d.Seconds())
}

// AddAlert counts a created alert.
func (i *Instruments) AddAlert(ctx context.Context, tenantID string, sev string) {
	if i == nil {
		return
	}
	i.AlertsCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tenant_id", tenantID),
		attribute.String("severity", sev),
	))
}

// AddSamples counts ingested samples.
func (i *Instruments) AddSamples(ctx context.Context, n int) {
	if i == nil {
		return
	}
	i.SamplesIngested.Add(ctx, int64(n))
}

// AddStep counts an executed escalation step.
func (i *Instruments) AddStep(ctx context.Context, step int) {
	if i == nil {
		return
	}
	i.StepsExecuted.Add(ctx, 1, metric.WithAttributes(attribute.Int("step", step)))
}
