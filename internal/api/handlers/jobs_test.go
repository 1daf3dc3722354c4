package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/api/handlers"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// fakeJobsProvider is a test double for JobsProvider.
type fakeJobsProvider struct {
	latestRuns []domain.JobRun
	history    []domain.JobRun
	err        error
	gotJob     string
	gotLimit   int
}

func (f *fakeJobsProvider) ListLatestJobRuns(context.Context) ([]domain.JobRun, error) {
	return f.latestRuns, f.err
}

func (f *fakeJobsProvider) ListJobRuns(_ context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	f.gotJob, f.gotLimit = jobName, limit
	return f.history, f.err
}

func sampleJobRun(jobName, status string) domain.JobRun {
	return domain.JobRun{
		ID:        "job-run-1",
		JobName:   jobName,
		StartedAt: time.Now().Truncate(time.Second),
		Status:    status,
	}
}

func TestListJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		provider   *fakeJobsProvider
		wantStatus int
		wantBody   []string
	}{
		{
			name: "latest runs",
			provider: &fakeJobsProvider{latestRuns: []domain.JobRun{
				sampleJobRun("escalation_scan", domain.JobStatusSucceeded),
				sampleJobRun("sample_retention", domain.JobStatusFailed),
			}},
			wantStatus: http.StatusOK,
			wantBody:   []string{"escalation_scan", "sample_retention"},
		},
		{
			name:       "empty",
			provider:   &fakeJobsProvider{},
			wantStatus: http.StatusOK,
			wantBody:   []string{"[]"},
		},
		{
			name:       "store error",
			provider:   &fakeJobsProvider{err: errors.New("db error")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"listing jobs failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(tt.provider))

			resp := api.Get("/api/v1/jobs")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetJobHistory(t *testing.T) {
	t.Parallel()

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		p := &fakeJobsProvider{history: []domain.JobRun{sampleJobRun("escalation_scan", domain.JobStatusSucceeded)}}
		_, api := humatest.New(t)
		handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(p))

		resp := api.Get("/api/v1/jobs/escalation_scan")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "escalation_scan", p.gotJob)
		assert.Equal(t, 20, p.gotLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		t.Parallel()

		p := &fakeJobsProvider{}
		_, api := humatest.New(t)
		handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(p))

		resp := api.Get("/api/v1/jobs/sample_retention?limit=5")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, 5, p.gotLimit)
		assert.Contains(t, resp.Body.String(), "[]")
	})

	t.Run("unknown job", func(t *testing.T) {
		t.Parallel()

		p := &fakeJobsProvider{}
		_, api := humatest.New(t)
		handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(p))

		resp := api.Get("/api/v1/jobs/ingestion")
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Empty(t, p.gotJob, "store must not be queried")
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(&fakeJobsProvider{err: errors.New("db error")}))

		resp := api.Get("/api/v1/jobs/escalation_scan")
		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "fetching job history failed")
	})
}
