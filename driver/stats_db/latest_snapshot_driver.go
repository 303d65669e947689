package stats_db

import (
	"context"
	"errors"

	"extstats/domain"

	"github.com/jackc/pgx/v5"
)

// LatestSnapshot returns the most recent snapshot for the extension, or
// domain.ErrSnapshotNotFound when the extension has never been captured.
func (r *StatsDBRepository) LatestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + snapshotColumns + `
		FROM extension_stats
		WHERE extension_id = $1
		ORDER BY captured_at DESC
		LIMIT 1
	`

	var s domain.Snapshot
	err := r.pool.QueryRow(ctx, query, extensionID).Scan(
		&s.ExtensionID,
		&s.Name,
		&s.Publisher,
		&s.Description,
		&s.Version,
		&s.InstallCount,
		&s.Rating,
		&s.RatingCount,
		&s.CapturedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	return &s, nil
}
