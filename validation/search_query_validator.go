package validation

import (
	"context"
	"fmt"
	"strings"

	apperrors "extstats/utils/errors"
)

const maxSearchQueryLength = 200

// SearchQueryValidator checks a free-text autocomplete query.
type SearchQueryValidator struct {
	MinQueryLength int
}

func (v *SearchQueryValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	query, ok := value.(string)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "q",
			Message: "query must be a string",
			Reason:  apperrors.ReasonInvalidQuery,
		})
		return result
	}

	trimmed := strings.TrimSpace(query)
	if len(trimmed) < v.MinQueryLength {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("search query must be at least %d characters", v.MinQueryLength),
			Reason:  apperrors.ReasonInvalidQuery,
			Value:   query,
		})
		return result
	}

	if len(trimmed) > maxSearchQueryLength {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("search query too long (maximum %d characters)", maxSearchQueryLength),
			Reason:  apperrors.ReasonInvalidQuery,
		})
		return result
	}

	return result
}
