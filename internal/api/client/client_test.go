package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"rule not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetRule(context.Background(), "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
	assert.True(t, IsNotFound(err))
}

func TestClient_Retries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetries(3))
	c.rc.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)

	runs, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ListRules(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rules", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("tenant_id"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.AlertRule{{ID: "r1", Name: "CPU high"}})
	}))
	defer srv.Close()

	rules, err := New(srv.URL).ListRules(context.Background(), RuleFilter{TenantID: "acme", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "r1", rules[0].ID)
}

func TestClient_AcknowledgeAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/alerts/a1/acknowledge", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"actor":"jane","note":"on it"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a1","status":"acknowledged"}`))
	}))
	defer srv.Close()

	a, err := New(srv.URL).AcknowledgeAlert(context.Background(), "a1", "jane", "on it")
	require.NoError(t, err)
	assert.Equal(t, domain.AlertAcknowledged, a.Status)
}

func TestClient_ListAlertsQuery(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{"active", "acknowledged"}, q["status"])
		assert.Equal(t, "2026-03-02T10:00:00Z", q.Get("since"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Empty(t, q.Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"alerts":[{"id":"a1"}],"total":1,"limit":10,"offset":0}`))
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListAlerts(context.Background(), &AlertFilter{
		Statuses: []string{"active", "acknowledged"},
		Since:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "a1", page.Alerts[0].ID)
}

func TestClient_PushMetrics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/agents/D1/metrics", r.URL.Path)
		var body struct {
			Samples []map[string]any `json:"samples"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Samples, 1)
		assert.NotContains(t, body.Samples[0], "collected_at")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"device_id":"D1","accepted":1,"rules_checked":2,"fired":1,"alerts":[],"auto_resolved":0}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).PushMetrics(context.Background(), "D1", []Sample{
		{Values: map[string]any{"cpu_percent": 95}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Fired)
}

func TestClient_DeleteRule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/rules/r1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).DeleteRule(context.Background(), "r1"))
}
