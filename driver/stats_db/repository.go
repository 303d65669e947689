package stats_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool abstracts the pgx connection pool so tests can substitute pgxmock.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const defaultTimezone = "America/Los_Angeles"

// StatsDBRepository reads and appends extension snapshot rows in the
// extension_stats table. Same-day multi-captures are collapsed at query
// time, keeping the row with the latest captured_at.
type StatsDBRepository struct {
	pool     DBPool
	timezone string
}

func NewStatsDBRepository(pool DBPool, timezone string) *StatsDBRepository {
	if timezone == "" {
		timezone = defaultTimezone
	}
	return &StatsDBRepository{pool: pool, timezone: timezone}
}

// snapshotColumns is the shared select list for full snapshot rows.
const snapshotColumns = `extension_id, name, publisher, description, version,
		install_count, rating, rating_count, captured_at`
