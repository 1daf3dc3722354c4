package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/metrics"
	storeMocks "github.com/donaldgifford/msp-alert-engine/internal/store/mocks"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func testSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		ScanInterval:      time.Minute,
		RetentionInterval: 6 * time.Hour,
		RetentionMaxAge:   30 * 24 * time.Hour,
		LockTTL:           5 * time.Minute,
	}
}

// newSchedulerTestEngine returns a test engine and a mock store for use in scheduler tests.
func newSchedulerTestEngine(t *testing.T) (*Engine, *storeMocks.MockStore) {
	t.Helper()
	eng, d := newTestEngine(t, baseTime)
	return eng, d.store
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 2)
	assert.NotZero(t, sched.scanEntryID)
	assert.NotZero(t, sched.retentionEntryID)
	assert.NotEqual(t, sched.scanEntryID, sched.retentionEntryID)
}

func TestNewScheduler_WithoutRetention(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)
	cfg := testSchedulerConfig()
	cfg.RetentionMaxAge = 0

	sched, err := NewScheduler(eng, ms, cfg, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.Zero(t, sched.retentionEntryID)
}

func TestNewScheduler_RejectsZeroScanInterval(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)
	cfg := testSchedulerConfig()
	cfg.ScanInterval = 0

	_, err := NewScheduler(eng, ms, cfg, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)
	cfg := testSchedulerConfig()
	cfg.ScanInterval = time.Hour
	cfg.RetentionInterval = 24 * time.Hour

	sched, err := NewScheduler(eng, ms, cfg, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, staleJobThreshold).Return(0, nil).Once()

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	eng, ms := newSchedulerTestEngine(t)
	cfg := testSchedulerConfig()
	cfg.ScanInterval = 15 * time.Minute

	sched, err := NewScheduler(eng, ms, cfg, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, mock.Anything).Return(0, nil).Once()

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextScanTimestamp), float64(0))
	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextRetentionTimestamp), float64(0))
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "test-job").Return("run-id-1", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-1", domain.JobStatusSucceeded, "", 7).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) (int, error) {
		called = true
		return 7, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	jobErr := errors.New("something went wrong")

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "fail-job").Return("run-id-2", nil).Once()
	ms.EXPECT().
		CompleteJobRun(mock.Anything, "run-id-2", domain.JobStatusFailed, jobErr.Error(), 0).
		Return(nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).
		Return(nil).Once()

	err = sched.runJob(context.Background(), "fail-job", 5*time.Minute, func(_ context.Context) (int, error) {
		return 0, jobErr
	})

	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, JobEscalationScan, mock.Anything, mock.Anything).
		Return(false, nil).Once()

	err = sched.runJob(context.Background(), JobEscalationScan, time.Minute, func(context.Context) (int, error) {
		t.Fatal("job must not run without the lock")
		return 0, nil
	})
	require.NoError(t, err)
}

func TestScheduler_RunJob_JobRunInsertFailureStillRuns(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "j", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().InsertJobRun(mock.Anything, "j").Return("", errors.New("insert failed")).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "j", mock.Anything).Return(nil).Once()

	called := false
	err = sched.runJob(context.Background(), "j", time.Minute, func(context.Context) (int, error) {
		called = true
		return 0, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RecoverStaleJobs(t *testing.T) {
	t.Parallel()

	eng, _ := newSchedulerTestEngine(t)
	ms := storeMocks.NewMockStore(t)

	sched, err := NewScheduler(eng, ms, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	ms.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(3, nil).Once()

	sched.RecoverStaleJobRuns(context.Background())
}

func TestScheduler_RunEscalationScanJob(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, baseTime)
	sched, err := NewScheduler(eng, d.store, testSchedulerConfig(), quietLogger())
	require.NoError(t, err)

	d.store.EXPECT().AcquireSchedulerLock(mock.Anything, JobEscalationScan, mock.Anything, mock.Anything).Return(true, nil).Once()
	d.store.EXPECT().InsertJobRun(mock.Anything, JobEscalationScan).Return("run-3", nil).Once()
	d.store.EXPECT().ListActiveAlerts(mock.Anything).Return(nil, nil).Once()
	d.store.EXPECT().CompleteJobRun(mock.Anything, "run-3", domain.JobStatusSucceeded, "", 0).Return(nil).Once()
	d.store.EXPECT().ReleaseSchedulerLock(mock.Anything, JobEscalationScan, mock.Anything).Return(nil).Once()

	sched.runEscalationScan()
}
