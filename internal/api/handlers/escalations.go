package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/engine"
)

// EscalationScanner runs one escalation scan.
type EscalationScanner interface {
	RunEscalationScan(ctx context.Context, now time.Time) (engine.ScanResult, error)
}

// EscalationHandler handles manual escalation scan requests.
type EscalationHandler struct {
	scanner EscalationScanner
	now     func() time.Time
}

// NewEscalationHandler creates a new EscalationHandler.
func NewEscalationHandler(s EscalationScanner) *EscalationHandler {
	return &EscalationHandler{scanner: s, now: time.Now}
}

// ScanOutput is the response body for a manual scan.
type ScanOutput struct {
	Body engine.ScanResult
}

// Scan advances every active alert's escalation once, as the scheduler would.
func (h *EscalationHandler) Scan(ctx context.Context, _ *struct{}) (*ScanOutput, error) {
	res, err := h.scanner.RunEscalationScan(ctx, h.now())
	if err != nil {
		return nil, huma.Error500InternalServerError("escalation scan failed: " + err.Error())
	}
	return &ScanOutput{Body: res}, nil
}

// RegisterEscalationRoutes registers escalation endpoints with the Huma API.
func RegisterEscalationRoutes(api huma.API, h *EscalationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-escalation-scan",
		Method:      http.MethodPost,
		Path:        "/api/v1/escalations/scan",
		Summary:     "Run an escalation scan",
		Description: "Executes every due escalation step now. Safe to call while the scheduler is running.",
		Tags:        []string{"escalation"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Scan)
}
