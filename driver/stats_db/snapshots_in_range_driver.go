package stats_db

import (
	"context"
	"errors"
	"time"

	"extstats/domain"
)

// SnapshotsInRange returns one snapshot per calendar day for the extension
// within [startDay, endDay], ascending by day. Multiple raw captures on the
// same day collapse to the one with the latest captured_at; the reduction is
// recomputed per query, never cached.
func (r *StatsDBRepository) SnapshotsInRange(ctx context.Context, extensionID string, startDay, endDay time.Time) ([]domain.Snapshot, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT DISTINCT ON (DATE(captured_at AT TIME ZONE $4))
			` + snapshotColumns + `,
			DATE(captured_at AT TIME ZONE $4) AS day
		FROM extension_stats
		WHERE extension_id = $1
		  AND DATE(captured_at AT TIME ZONE $4) BETWEEN $2::date AND $3::date
		ORDER BY DATE(captured_at AT TIME ZONE $4) ASC, captured_at DESC
	`

	rows, err := r.pool.Query(ctx, query, extensionID, startDay.Format(dayFormat), endDay.Format(dayFormat), r.timezone)
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
