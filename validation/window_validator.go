package validation

import (
	"context"
	"fmt"

	apperrors "extstats/utils/errors"
)

// WindowValidator checks a trailing day-window value against the configured
// ceiling. Zero and negative windows are rejected before any repository
// access.
type WindowValidator struct {
	MaxWindowDays int
}

func (v *WindowValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	days, ok := value.(int)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "window",
			Message: "window must be an integer day count",
			Reason:  apperrors.ReasonInvalidWindow,
		})
		return result
	}

	if days <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "window",
			Message: "window must be a positive number of days",
			Reason:  apperrors.ReasonInvalidWindow,
			Value:   fmt.Sprintf("%d", days),
		})
		return result
	}

	if v.MaxWindowDays > 0 && days > v.MaxWindowDays {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "window",
			Message: fmt.Sprintf("window must not exceed %d days", v.MaxWindowDays),
			Reason:  apperrors.ReasonInvalidWindow,
			Value:   fmt.Sprintf("%d", days),
		})
		return result
	}

	return result
}

// LimitValidator checks a result-count limit against the configured ceiling.
type LimitValidator struct {
	MaxLimit int
}

func (v *LimitValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	limit, ok := value.(int)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "limit",
			Message: "limit must be an integer",
			Reason:  apperrors.ReasonInvalidLimit,
		})
		return result
	}

	if limit <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
			Reason:  apperrors.ReasonInvalidLimit,
			Value:   fmt.Sprintf("%d", limit),
		})
		return result
	}

	if v.MaxLimit > 0 && limit > v.MaxLimit {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must not exceed %d", v.MaxLimit),
			Reason:  apperrors.ReasonInvalidLimit,
			Value:   fmt.Sprintf("%d", limit),
		})
		return result
	}

	return result
}
