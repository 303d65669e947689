package stats_db

import (
	"context"
	"errors"

	"extstats/domain"
	"extstats/utils/logger"
)

// InsertSnapshots appends a batch of snapshot rows. The table carries a
// uniqueness constraint on (extension_id, captured_at); conflicting rows are
// skipped rather than updated, keeping the store append-only. Returns the
// number of rows actually inserted.
func (r *StatsDBRepository) InsertSnapshots(ctx context.Context, batch []domain.Snapshot) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection pool is nil")
	}

	query := `
		INSERT INTO extension_stats
			(extension_id, name, publisher, description, version,
			 install_count, rating, rating_count, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (extension_id, captured_at) DO NOTHING
	`

	var inserted int64
	for _, s := range batch {
		tag, err := r.pool.Exec(ctx, query,
			s.ExtensionID,
			s.Name,
			s.Publisher,
			s.Description,
			s.Version,
			s.InstallCount,
			s.Rating,
			s.RatingCount,
			s.CapturedAt,
		)
		if err != nil {
			logger.SafeError("failed to insert snapshot row",
				"extension_id", s.ExtensionID,
				"captured_at", s.CapturedAt,
				"error", err)
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}
