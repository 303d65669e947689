package ingest_snapshot_gateway

import (
	"context"

	"extstats/domain"
	"extstats/driver/stats_db"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"
)

// IngestSnapshotsGateway implements the IngestSnapshotsPort interface.
type IngestSnapshotsGateway struct {
	repo *stats_db.StatsDBRepository
}

func NewIngestSnapshotsGateway(pool stats_db.DBPool, timezone string) *IngestSnapshotsGateway {
	return &IngestSnapshotsGateway{
		repo: stats_db.NewStatsDBRepository(pool, timezone),
	}
}

func (g *IngestSnapshotsGateway) Execute(ctx context.Context, batch []domain.Snapshot) (int64, error) {
	inserted, err := g.repo.InsertSnapshots(ctx, batch)
	if err != nil {
		dbErr := apperrors.DatabaseError("failed to insert snapshot batch", err, map[string]interface{}{
			"gateway":    "IngestSnapshotsGateway",
			"method":     "InsertSnapshots",
			"batch_size": len(batch),
			"inserted":   inserted,
		})
		apperrors.LogError(logger.Logger, dbErr, "insert_snapshots")
		return inserted, dbErr
	}

	return inserted, nil
}
