package stats_db

import (
	"context"
	"errors"

	"extstats/domain"
)

// SearchExtensions finds extensions whose name, publisher, or id matches the
// query, returning the latest state of each ordered by install count.
func (r *StatsDBRepository) SearchExtensions(ctx context.Context, query string, minInstallCount int64, limit int) ([]domain.ExtensionSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	pattern := "%" + query + "%"

	sql := `
		SELECT extension_id, name, publisher, install_count
		FROM (
			SELECT DISTINCT ON (extension_id)
				extension_id, name, publisher, install_count, captured_at
			FROM extension_stats
			WHERE name ILIKE $1
			   OR publisher ILIKE $1
			   OR extension_id ILIKE $1
			ORDER BY extension_id, captured_at DESC
		) latest
		WHERE install_count > $2
		ORDER BY install_count DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, sql, pattern, minInstallCount, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ExtensionSummary
	for rows.Next() {
		var e domain.ExtensionSummary
		if err := rows.Scan(&e.ExtensionID, &e.Name, &e.Publisher, &e.InstallCount); err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
