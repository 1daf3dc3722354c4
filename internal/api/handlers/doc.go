// Package handlers implements the HTTP API of msp-alert-engine.
package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// apiError maps domain and store errors onto HTTP problems. what names the
// operation or resource for the message.
func apiError(what string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(what + " not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict(what + ": " + err.Error())
	case errors.Is(err, domain.ErrInvalidCondition),
		errors.Is(err, domain.ErrInvalidPolicy),
		errors.Is(err, engine.ErrEmptyBatch):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(what + " failed: " + err.Error())
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
