package stats_db

import (
	"context"
	"errors"

	"extstats/domain"
)

// TopLatestSnapshots returns the latest snapshot per extension, ordered by
// install_count descending, capped at n rows. Extensions at or below
// minInstallCount are filtered out of the candidate pool.
func (r *StatsDBRepository) TopLatestSnapshots(ctx context.Context, n int, minInstallCount int64) ([]domain.Snapshot, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT extension_id, name, publisher, description, version,
			install_count, rating, rating_count, captured_at, day
		FROM (
			SELECT DISTINCT ON (extension_id)
				` + snapshotColumns + `,
				DATE(captured_at AT TIME ZONE $3) AS day
			FROM extension_stats
			ORDER BY extension_id, captured_at DESC
		) latest
		WHERE install_count > $2
		ORDER BY install_count DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, n, minInstallCount, r.timezone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.Snapshot
	for rows.Next() {
		var s domain.Snapshot
		if err := rows.Scan(
			&s.ExtensionID,
			&s.Name,
			&s.Publisher,
			&s.Description,
			&s.Version,
			&s.InstallCount,
			&s.Rating,
			&s.RatingCount,
			&s.CapturedAt,
			&s.CaptureDay,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
