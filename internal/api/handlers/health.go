package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckFunc is an additional readiness probe.
type CheckFunc func(ctx context.Context) error

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	db      Pinger
	checks  map[string]CheckFunc
	timeout time.Duration
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithCheck adds a named readiness probe next to the database ping.
func WithCheck(name string, fn CheckFunc) HealthOption {
	return func(h *HealthHandler) {
		h.checks[name] = fn
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		db:      db,
		checks:  map[string]CheckFunc{},
		timeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type readyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database and every registered check pass,
// 503 otherwise.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} readyResponse
// @Failure 503 {object} readyResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	resp := readyResponse{Status: "ready", Checks: map[string]string{}}
	record := func(name string, err error) {
		if err != nil {
			resp.Status = "unavailable"
			resp.Checks[name] = err.Error()
			return
		}
		resp.Checks[name] = "ok"
	}

	record("database", h.db.Ping(ctx))
	for name, fn := range h.checks {
		record(name, fn(ctx))
	}

	if resp.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
