package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	"github.com/donaldgifford/msp-alert-engine/pkg/logger"
)

const maxPendingSamples = 100

// sampleFunc reads one set of metric values.
type sampleFunc func(ctx context.Context) (map[string]any, error)

// metricPusher is the client surface the agent needs.
type metricPusher interface {
	PushMetrics(ctx context.Context, deviceID string, samples []apiclient.Sample) (*engine.IngestResult, error)
}

func agentCmd() *cobra.Command {
	var (
		interval time.Duration
		diskPath string
		once     bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "agent <device-id>",
		Short: "Sample this host and push metrics on an interval",
		Long: "Runs a lightweight metrics agent. Every interval it samples CPU, memory,\n" +
			"disk and load for this host and pushes them for <device-id>. Samples that\n" +
			"fail to send are kept and retried with the next push.\n\n" +
			"Metrics: cpu_percent, memory_percent, disk_used_percent, disk_free_gb,\n" +
			"load1, uptime_seconds, online.",
		Example: `  maectl agent D1 --interval 30s
  maectl agent D1 --once --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logLevel, "text")
			a := &agent{
				deviceID: args[0],
				sample:   hostSampler(diskPath),
				client:   newClient(),
				log:      log,
				now:      time.Now,
			}

			if once {
				res, err := a.tick(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), res)
				}
				return printIngestResult(cmd.OutOrStdout(), res)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log.Info("agent started", "device_id", a.deviceID, "interval", interval)
			a.run(ctx, interval)
			log.Info("agent stopped")
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "sampling interval")
	cmd.Flags().StringVar(&diskPath, "disk", "/", "filesystem path for disk metrics")
	cmd.Flags().BoolVar(&once, "once", false, "push a single sample and exit")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}

type agent struct {
	deviceID string
	sample   sampleFunc
	client   metricPusher
	log      *slog.Logger
	now      func() time.Time
	pending  []apiclient.Sample
}

func (a *agent) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := a.tick(ctx); err != nil && ctx.Err() == nil {
			a.log.Warn("push failed", "error", err, "pending", len(a.pending))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick samples once and pushes everything pending. Unsent samples stay
// pending, oldest dropped first past maxPendingSamples.
func (a *agent) tick(ctx context.Context) (*engine.IngestResult, error) {
	values, err := a.sample(ctx)
	if err != nil {
		return nil, fmt.Errorf("sampling host: %w", err)
	}
	a.pending = append(a.pending, apiclient.Sample{CollectedAt: a.now().UTC(), Values: values})
	if over := len(a.pending) - maxPendingSamples; over > 0 {
		a.pending = a.pending[over:]
	}

	res, err := a.client.PushMetrics(ctx, a.deviceID, a.pending)
	if err != nil {
		return nil, err
	}
	a.log.Debug("samples pushed", "accepted", res.Accepted, "fired", res.Fired)
	a.pending = nil
	return res, nil
}

// hostSampler reads host metrics with gopsutil. Individual readings that
// fail are left out; the sample fails only when nothing could be read.
func hostSampler(diskPath string) sampleFunc {
	return func(ctx context.Context) (map[string]any, error) {
		values := map[string]any{"online": true}
		var firstErr error
		note := func(err error) {
			if firstErr == nil {
				firstErr = err
			}
		}

		if pct, err := cpu.PercentWithContext(ctx, time.Second, false); err != nil {
			note(err)
		} else if len(pct) > 0 {
			values["cpu_percent"] = round2(pct[0])
		}

		if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
			note(err)
		} else {
			values["memory_percent"] = round2(vm.UsedPercent)
		}

		if du, err := disk.UsageWithContext(ctx, diskPath); err != nil {
			note(err)
		} else {
			values["disk_used_percent"] = round2(du.UsedPercent)
			values["disk_free_gb"] = round2(float64(du.Free) / (1 << 30))
		}

		if avg, err := load.AvgWithContext(ctx); err == nil {
			values["load1"] = round2(avg.Load1)
		}

		if up, err := host.UptimeWithContext(ctx); err == nil {
			values["uptime_seconds"] = up
		}

		if len(values) == 1 && firstErr != nil {
			return nil, firstErr
		}
		return values, nil
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
