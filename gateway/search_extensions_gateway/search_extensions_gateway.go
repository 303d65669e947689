package search_extensions_gateway

import (
	"context"

	"extstats/domain"
	"extstats/driver/stats_db"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"
)

// SearchExtensionsGateway implements the SearchExtensionsPort interface.
type SearchExtensionsGateway struct {
	repo            *stats_db.StatsDBRepository
	minInstallCount int64
}

func NewSearchExtensionsGateway(pool stats_db.DBPool, timezone string, minInstallCount int64) *SearchExtensionsGateway {
	return &SearchExtensionsGateway{
		repo:            stats_db.NewStatsDBRepository(pool, timezone),
		minInstallCount: minInstallCount,
	}
}

func (g *SearchExtensionsGateway) Execute(ctx context.Context, query string, limit int) ([]domain.ExtensionSummary, error) {
	results, err := g.repo.SearchExtensions(ctx, query, g.minInstallCount, limit)
	if err != nil {
		dbErr := apperrors.DatabaseError("failed to search extensions", err, map[string]interface{}{
			"gateway": "SearchExtensionsGateway",
			"method":  "SearchExtensions",
			"query":   query,
		})
		apperrors.LogError(logger.Logger, dbErr, "search_extensions")
		return nil, dbErr
	}

	return results, nil
}
