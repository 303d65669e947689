package stats_db

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLatestSnapshots(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsDBRepository(mock, "America/Los_Angeles")

	rows := snapshotRowsWithDay().
		AddRow("ms-python.python", "Python", "ms-python", "", "2026.8.0",
			int64(98_000_000), nil, nil,
			time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
		AddRow("github.copilot", "GitHub Copilot", "github", "", "1.250.0",
			int64(22_000_000), nil, nil,
			time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`SELECT DISTINCT ON \(extension_id\)`).
		WithArgs(500, int64(1000), "America/Los_Angeles").
		WillReturnRows(rows)

	snapshots, err := repo.TopLatestSnapshots(context.Background(), 500, 1000)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.GreaterOrEqual(t, snapshots[0].InstallCount, snapshots[1].InstallCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTopLatestSnapshots_NilPool(t *testing.T) {
	repo := &StatsDBRepository{pool: nil}

	_, err := repo.TopLatestSnapshots(context.Background(), 500, 1000)
	assert.Error(t, err)
}
