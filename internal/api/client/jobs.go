package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a specific scheduled job.
// A zero limit uses the server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
