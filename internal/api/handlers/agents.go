package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// SampleIngester accepts metric batches from agents.
type SampleIngester interface {
	IngestSamples(ctx context.Context, deviceID string, samples []domain.MetricSample) (*engine.IngestResult, error)
}

// AgentHandler receives agent metric pushes.
type AgentHandler struct {
	ingester SampleIngester
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(ing SampleIngester) *AgentHandler {
	return &AgentHandler{ingester: ing}
}

// SampleBody is one reading in an agent push. A zero collected_at is
// stamped with the ingestion time.
type SampleBody struct {
	CollectedAt time.Time      `json:"collected_at,omitempty" doc:"Time the reading represents"`
	Values      map[string]any `json:"values"                 doc:"Metric name to numeric or boolean value"`
}

// PushMetricsInput is the input for an agent metric push.
type PushMetricsInput struct {
	DeviceID string `path:"device_id" doc:"Reporting device ID"`
	Body     struct {
		Samples []SampleBody `json:"samples" minItems:"1" maxItems:"1000"`
	}
}

// PushMetricsOutput reports what the batch produced.
type PushMetricsOutput struct {
	Body engine.IngestResult
}

// PushMetrics stores a sample batch and evaluates the device's rules.
func (h *AgentHandler) PushMetrics(ctx context.Context, input *PushMetricsInput) (*PushMetricsOutput, error) {
	samples := make([]domain.MetricSample, 0, len(input.Body.Samples))
	for _, s := range input.Body.Samples {
		samples = append(samples, domain.MetricSample{
			DeviceID:    input.DeviceID,
			CollectedAt: s.CollectedAt,
			Values:      s.Values,
		})
	}

	res, err := h.ingester.IngestSamples(ctx, input.DeviceID, samples)
	if err != nil {
		return nil, apiError("device "+input.DeviceID, err)
	}
	if res.Alerts == nil {
		res.Alerts = []domain.AlertInstance{}
	}
	return &PushMetricsOutput{Body: *res}, nil
}

// RegisterAgentRoutes registers agent ingestion endpoints with the Huma API.
func RegisterAgentRoutes(api huma.API, h *AgentHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "push-metrics",
		Method:      http.MethodPost,
		Path:        "/api/v1/agents/{device_id}/metrics",
		Summary:     "Push metric samples",
		Description: "Stores a batch of samples for a device, evaluates its applicable rules " +
			"and returns the alerts the batch raised.",
		Tags:   []string{"agents"},
		Errors: []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.PushMetrics)
}
