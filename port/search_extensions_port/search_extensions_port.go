package search_extensions_port

import (
	"context"

	"extstats/domain"
)

// SearchExtensionsPort finds extensions matching a free-text query against
// name, publisher, or extension id, returning latest-state summaries.
type SearchExtensionsPort interface {
	Execute(ctx context.Context, query string, limit int) ([]domain.ExtensionSummary, error)
}
