package stats_db

import (
	"context"
	"errors"
	"time"

	"extstats/domain"

	"github.com/jackc/pgx/v5"
)

const dayFormat = "2006-01-02"

// SnapshotOnOrBefore returns the most recent snapshot whose capture day is
// on or before the given day, used as the baseline for growth windows when
// no snapshot exists exactly on the target day.
func (r *StatsDBRepository) SnapshotOnOrBefore(ctx context.Context, extensionID string, day time.Time) (*domain.Snapshot, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + snapshotColumns + `,
			DATE(captured_at AT TIME ZONE $3) AS day
		FROM extension_stats
		WHERE extension_id = $1
		  AND DATE(captured_at AT TIME ZONE $3) <= $2::date
		ORDER BY captured_at DESC
		LIMIT 1
	`

	var s domain.Snapshot
	err := r.pool.QueryRow(ctx, query, extensionID, day.Format(dayFormat), r.timezone).Scan(
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	return &s, nil
}

// EarliestSnapshot returns the oldest snapshot for the extension. It backs
// the growth-since-first-seen baseline policy.
func (r *StatsDBRepository) EarliestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + snapshotColumns + `,
			DATE(captured_at AT TIME ZONE $2) AS day
		FROM extension_stats
		WHERE extension_id = $1
		ORDER BY captured_at ASC
		LIMIT 1
	`

	var s domain.Snapshot
	err := r.pool.QueryRow(ctx, query, extensionID, r.timezone).Scan(
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	return &s, nil
}
