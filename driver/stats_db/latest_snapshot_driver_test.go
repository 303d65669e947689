package stats_db

import (
	"context"
	"testing"
	"time"

	"extstats/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsDBRepository(mock, "")

	rating := 4.5
	ratingCount := int64(1234)
	capturedAt := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"extension_id", "name", "publisher", "description", "version",
		"install_count", "rating", "rating_count", "captured_at",
	}).AddRow(
		"ms-python.python", "Python", "ms-python", "Python language support", "2026.8.0",
		int64(98_000_000), &rating, &ratingCount, capturedAt,
	)

	mock.ExpectQuery(`SELECT extension_id, name, publisher, description, version`).
		WithArgs("ms-python.python").
		WillReturnRows(rows)

	snapshot, err := repo.LatestSnapshot(context.Background(), "ms-python.python")
	require.NoError(t, err)
	assert.Equal(t, "ms-python.python", snapshot.ExtensionID)
	assert.Equal(t, int64(98_000_000), snapshot.InstallCount)
	require.NotNil(t, snapshot.Rating)
	assert.InDelta(t, 4.5, *snapshot.Rating, 0.001)
	assert.Equal(t, capturedAt, snapshot.CapturedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestSnapshot_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsDBRepository(mock, "")

	mock.ExpectQuery(`SELECT extension_id, name, publisher, description, version`).
		WithArgs("ghost.extension").
		WillReturnRows(pgxmock.NewRows([]string{
			"extension_id", "name", "publisher", "description", "version",
			"install_count", "rating", "rating_count", "captured_at",
		}))

	_, err = repo.LatestSnapshot(context.Background(), "ghost.extension")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestSnapshot_NilPool(t *testing.T) {
	repo := &StatsDBRepository{pool: nil}

	_, err := repo.LatestSnapshot(context.Background(), "ms-python.python")
	assert.Error(t, err)
}
