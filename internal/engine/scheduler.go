package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// Job names recorded in job_runs and scheduler_locks.
const (
	JobEscalationScan  = "escalation_scan"
	JobSampleRetention = "sample_retention"
)

const staleJobThreshold = 2 * time.Hour

// SchedulerConfig holds the job intervals. A zero RetentionInterval or
// RetentionMaxAge disables sample retention.
type SchedulerConfig struct {
	ScanInterval      time.Duration
	RetentionInterval time.Duration
	RetentionMaxAge   time.Duration
	LockTTL           time.Duration
}

// Scheduler manages the periodic escalation scan and sample retention.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	cfg    SchedulerConfig
	holder string
	log    *slog.Logger

	scanEntryID      cron.EntryID
	retentionEntryID cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	s store.Store,
	cfg SchedulerConfig,
	log *slog.Logger,
) (*Scheduler, error) {
	if cfg.ScanInterval <= 0 {
		return nil, fmt.Errorf("scan interval must be positive, got %s", cfg.ScanInterval)
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 5 * time.Minute
	}

	host, _ := os.Hostname()
	sched := &Scheduler{
		cron:   cron.New(),
		engine: eng,
		store:  s,
		cfg:    cfg,
		holder: fmt.Sprintf("%s-%s", host, uuid.NewString()[:8]),
		log:    log,
	}

	id, err := sched.cron.AddFunc("@every "+cfg.ScanInterval.String(), sched.runEscalationScan)
	if err != nil {
		return nil, fmt.Errorf("scheduling %s: %w", JobEscalationScan, err)
	}
	sched.scanEntryID = id

	if cfg.RetentionInterval > 0 && cfg.RetentionMaxAge > 0 {
		id, err := sched.cron.AddFunc("@every "+cfg.RetentionInterval.String(), sched.runRetention)
		if err != nil {
			return nil, fmt.Errorf("scheduling %s: %w", JobSampleRetention, err)
		}
		sched.retentionEntryID = id
	}

	return sched, nil
}

// Start recovers job runs left behind by a crashed process and begins
// running scheduled tasks.
func (s *Scheduler) Start() {
	s.RecoverStaleJobRuns(context.Background())
	s.cron.Start()
	s.SyncNextRunTimestamps()
	s.log.Info("scheduler started", "holder", s.holder, "scan_interval", s.cfg.ScanInterval)
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps exports the next run time of each job.
func (s *Scheduler) SyncNextRunTimestamps() {
	if e := s.cron.Entry(s.scanEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextScanTimestamp.Set(float64(e.Next.Unix()))
	}
	if s.retentionEntryID != 0 {
		if e := s.cron.Entry(s.retentionEntryID); !e.Next.IsZero() {
			metrics.SchedulerNextRetentionTimestamp.Set(float64(e.Next.Unix()))
		}
	}
}

// RecoverStaleJobRuns marks running job rows older than two hours as crashed.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobThreshold)
	if err != nil {
		s.log.Warn("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

func (s *Scheduler) runEscalationScan() {
	defer s.SyncNextRunTimestamps()
	err := s.runJob(context.Background(), JobEscalationScan, s.cfg.LockTTL, func(ctx context.Context) (int, error) {
		res, err := s.engine.RunEscalationScan(ctx, s.engine.now())
		return res.Executed, err
	})
	if err != nil {
		s.log.Error("scheduled escalation scan failed", "error", err)
	}
}

func (s *Scheduler) runRetention() {
	defer s.SyncNextRunTimestamps()
	err := s.runJob(context.Background(), JobSampleRetention, s.cfg.LockTTL, func(ctx context.Context) (int, error) {
		return s.engine.RunRetention(ctx, s.cfg.RetentionMaxAge)
	})
	if err != nil {
		s.log.Error("scheduled sample retention failed", "error", err)
	}
}

// runJob runs fn under the job's distributed lock and records the run in
// job_runs. When another instance holds the lock the run is skipped.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		s.log.Debug("job held by another instance, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock failed", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Warn("recording job start failed", "job", name, "error", err)
	}

	rows, jobErr := fn(ctx)

	if runID != "" {
		status, errText := domain.JobStatusSucceeded, ""
		if jobErr != nil {
			status, errText = domain.JobStatusFailed, jobErr.Error()
		}
		if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
			s.log.Warn("recording job completion failed", "job", name, "error", err)
		}
	}

	return jobErr
}
