package mcp

import (
	"errors"
	"fmt"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/validation"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Returns nil for errors
// with no mapping.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	if verr, ok := validation.AsError(err); ok {
		return &APIError{
			Code:         "VALIDATION_FAILED",
			Message:      "validation failed",
			Details:      verr.Messages,
			RecoveryHint: "Fix the listed fields and retry",
		}
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project id"}
	case errors.Is(err, catalog.ErrTypeNotFound):
		return &APIError{Code: "PROJECT_TYPE_NOT_FOUND", Message: "project type not found", RecoveryHint: "Check the project type id"}
	case errors.Is(err, catalog.ErrPlatformNotFound):
		return &APIError{Code: "PLATFORM_NOT_FOUND", Message: "platform not found", RecoveryHint: "Check the platform id"}
	case errors.Is(err, timeline.ErrNoPlatform):
		return &APIError{Code: "NO_PLATFORM_ASSIGNED", Message: "no platform assigned on or before that date", RecoveryHint: "Assign a platform at an earlier date first"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
