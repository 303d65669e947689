package validation

import (
	"context"

	apperrors "extstats/utils/errors"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Value   string `json:"value,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Validator interface {
	Validate(ctx context.Context, value interface{}) ValidationResult
}

// ToAppError converts a failed validation result into a structured
// validation error carrying the first failure's reason code. Returns nil
// for valid results.
func (r ValidationResult) ToAppError() *apperrors.AppError {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}

	first := r.Errors[0]
	return apperrors.ValidationError(first.Message, first.Reason, map[string]interface{}{
		"field": first.Field,
		"value": first.Value,
	})
}
