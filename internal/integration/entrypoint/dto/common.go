// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Issues  []ValidationIssue `json:"issues,omitempty"`
}

// ValidationIssue represents a single field-level validation failure.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// IssuesFromBindingError extracts field-level issues from a Gin binding error.
// Returns nil when the error is not a validator error (e.g. malformed JSON).
func IssuesFromBindingError(err error) []ValidationIssue {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	issues := make([]ValidationIssue, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		issues = append(issues, ValidationIssue{
			Field:   fieldErr.Field(),
			Message: "failed on the '" + fieldErr.Tag() + "' rule",
		})
	}
	return issues
}
