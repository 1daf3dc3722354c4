package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is one request seen by the fake API.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// fakeAPI answers with canned JSON per "METHOD path" and records requests.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
}

func newFakeAPI(t *testing.T, responses map[string]string) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{responses: responses}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		f.mu.Lock()
		f.requests = append(f.requests, rec)
		f.mu.Unlock()

		resp, ok := f.responses[r.Method+" "+r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"not found"}`))
			return
		}
		if resp == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

// run executes maectl against srv. Persistent flags are always passed so
// state from earlier runs does not leak in.
func run(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args,
		"--server", srv.URL,
		"--retries", "0",
	))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Root().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"rules", "policies", "alerts", "devices", "roles", "push", "agent", "scan", "jobs"} {
		assert.True(t, names[want], want)
	}
}
