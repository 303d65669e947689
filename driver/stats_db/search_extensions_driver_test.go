package stats_db

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchExtensions(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		mockSetup     func(pgxmock.PgxPoolIface)
		expectedCount int
		expectedError bool
	}{
		{
			name:  "successful search with results",
			query: "python",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"extension_id", "name", "publisher", "install_count"}).
					AddRow("ms-python.python", "Python", "ms-python", int64(98_000_000)).
					AddRow("ms-python.vscode-pylance", "Pylance", "ms-python", int64(72_000_000))

				mock.ExpectQuery(`name ILIKE \$1`).
					WithArgs("%python%", int64(100), 10).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:  "no results",
			query: "nonexistent",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`name ILIKE \$1`).
					WithArgs("%nonexistent%", int64(100), 10).
					WillReturnRows(pgxmock.NewRows([]string{"extension_id", "name", "publisher", "install_count"}))
			},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewStatsDBRepository(mock, "America/Los_Angeles")
			results, err := repo.SearchExtensions(context.Background(), tt.query, 100, 10)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, results, tt.expectedCount)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertSnapshots(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsDBRepository(mock, "America/Los_Angeles")

	capturedAt := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	batch := testSnapshotBatch(capturedAt)

	// First row inserts, second hits the (extension_id, captured_at)
	// uniqueness constraint and is skipped.
	mock.ExpectExec(`INSERT INTO extension_stats`).
		WithArgs("ms-python.python", "Python", "ms-python", "", "2026.8.0",
			int64(98_000_000), (*float64)(nil), (*int64)(nil), capturedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO extension_stats`).
		WithArgs("github.copilot", "GitHub Copilot", "github", "", "1.250.0",
			int64(22_000_000), (*float64)(nil), (*int64)(nil), capturedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.InsertSnapshots(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	require.NoError(t, mock.ExpectationsWereMet())
}
