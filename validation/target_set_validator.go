package validation

import (
	"context"
	"fmt"

	"extstats/domain"
	apperrors "extstats/utils/errors"
)

// TargetSetValidator checks the extension id set of a comparison request:
// non-empty, at most MaxTargets ids, and each id syntactically a
// publisher.name token. The cap is enforced here so oversized requests are
// rejected before any repository query executes.
type TargetSetValidator struct {
	MaxTargets int
}

func (v *TargetSetValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	ids, ok := value.([]string)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "ids",
			Message: "ids must be a list of extension identifiers",
			Reason:  apperrors.ReasonEmptyTargetSet,
		})
		return result
	}

	if len(ids) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "ids",
			Message: "at least one extension id is required",
			Reason:  apperrors.ReasonEmptyTargetSet,
		})
		return result
	}

	if v.MaxTargets > 0 && len(ids) > v.MaxTargets {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "ids",
			Message: fmt.Sprintf("at most %d extensions can be compared at once", v.MaxTargets),
			Reason:  apperrors.ReasonTooManyTargets,
			Value:   fmt.Sprintf("%d", len(ids)),
		})
		return result
	}

	for _, id := range ids {
		if err := domain.ValidateExtensionID(id); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "ids",
				Message: err.Error(),
				Reason:  apperrors.ReasonInvalidExtensionID,
				Value:   id,
			})
		}
	}

	return result
}
