// Package main implements a mock notification sink for local development.
// It accepts the SMS gateway and Discord webhook calls the engine makes and
// keeps them in memory so escalations can be watched without real providers.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// smsRequest mirrors the body the engine's SMS notifier posts.
type smsRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// delivery is one captured notification.
type delivery struct {
	ID         string          `json:"id"`
	Channel    string          `json:"channel"`
	ReceivedAt time.Time       `json:"received_at"`
	Body       json.RawMessage `json:"body"`
}

// sink stores deliveries and optionally fails every Nth SMS.
type sink struct {
	mu         sync.Mutex
	deliveries []delivery
	smsCount   int
	failEvery  int
	apiKey     string
}

func (s *sink) record(channel string, body json.RawMessage) delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := delivery{
		ID:         channel + "-" + strconv.Itoa(len(s.deliveries)+1),
		Channel:    channel,
		ReceivedAt: time.Now().UTC(),
		Body:       body,
	}
	s.deliveries = append(s.deliveries, d)
	return d
}

func (s *sink) list(channel string) []delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		if channel == "" || d.Channel == channel {
			out = append(out, d)
		}
	}
	return out
}

func (s *sink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = nil
	s.smsCount = 0
}

// shouldFail counts an SMS attempt and reports whether it is an injected
// failure.
func (s *sink) shouldFail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smsCount++
	return s.failEvery > 0 && s.smsCount%s.failEvery == 0
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	apiKey := flag.String("api-key", "", "bearer token required on SMS requests (empty disables the check)")
	failEvery := flag.Int("fail-every", 0, "return 503 for every Nth SMS request (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := &sink{apiKey: *apiKey, failEvery: *failEvery}

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock notification sink", "addr", addr,
		"sms_url", fmt.Sprintf("http://localhost:%d/sms", *port),
		"discord_url", fmt.Sprintf("http://localhost:%d/discord/webhook", *port),
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, s)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, s *sink) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sms", smsHandler(logger, s))
	mux.HandleFunc("POST /discord/webhook", discordHandler(logger, s))
	mux.HandleFunc("GET /deliveries", listHandler(s))
	mux.HandleFunc("DELETE /deliveries", func(w http.ResponseWriter, _ *http.Request) {
		s.reset()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func smsHandler(logger *slog.Logger, s *sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get("Authorization") != "Bearer "+s.apiKey {
			logger.Warn("sms request with bad or missing bearer token")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		var req smsRequest
		raw := json.RawMessage{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
		if err := json.Unmarshal(raw, &req); err != nil || req.To == "" || strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to and text are required"})
			return
		}

		if s.shouldFail() {
			logger.Info("injecting sms failure", "to", req.To)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "gateway busy"})
			return
		}

		d := s.record("sms", raw)
		logger.Info("sms accepted", "id", d.ID, "to", req.To, "text", req.Text)
		writeJSON(w, http.StatusOK, map[string]string{"id": d.ID, "status": "queued"})
	}
}

func discordHandler(logger *slog.Logger, s *sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Embeds []json.RawMessage `json:"embeds"`
		}
		raw := json.RawMessage{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Cannot send an empty message"})
			return
		}
		if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Embeds) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Cannot send an empty message"})
			return
		}

		d := s.record("discord", raw)
		logger.Info("discord webhook accepted", "id", d.ID, "embeds", len(payload.Embeds))
		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler(s *sink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.list(r.URL.Query().Get("channel")))
	}
}
