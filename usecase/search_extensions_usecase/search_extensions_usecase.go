package search_extensions_usecase

import (
	"context"
	"strings"

	"extstats/config"
	"extstats/domain"
	"extstats/port/search_extensions_port"
	"extstats/validation"
)

// SearchExtensionsUsecase handles autocomplete searches over the latest
// extension state.
type SearchExtensionsUsecase struct {
	searchPort     search_extensions_port.SearchExtensionsPort
	queryValidator *validation.SearchQueryValidator
	defaultLimit   int
	maxLimit       int
}

func NewSearchExtensionsUsecase(port search_extensions_port.SearchExtensionsPort, cfg *config.SearchConfig) *SearchExtensionsUsecase {
	return &SearchExtensionsUsecase{
		searchPort:     port,
		queryValidator: &validation.SearchQueryValidator{MinQueryLength: cfg.MinQueryLength},
		defaultLimit:   cfg.DefaultLimit,
		maxLimit:       cfg.MaxLimit,
	}
}

// Execute validates the query, clamps the limit into the configured range,
// and delegates to the search port. A limit of zero means "use the default".
func (u *SearchExtensionsUsecase) Execute(ctx context.Context, query string, limit int) ([]domain.ExtensionSummary, error) {
	if appErr := u.queryValidator.Validate(ctx, query).ToAppError(); appErr != nil {
		return nil, appErr
	}

	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	return u.searchPort.Execute(ctx, strings.TrimSpace(query), limit)
}
