package get_extension_usecase

import (
	"context"
	"testing"
	"time"

	"extstats/config"
	"extstats/domain"
	apperrors "extstats/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSnapshotRepo struct {
	latest      *domain.Snapshot
	latestErr   error
	history     []domain.Snapshot
	historyErr  error
	latestCalls int
	rangeCalls  int
	gotStart    time.Time
	gotEnd      time.Time
}

func (m *mockSnapshotRepo) LatestSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	m.latestCalls++
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	return m.latest, nil
}

func (m *mockSnapshotRepo) EarliestSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	return nil, domain.ErrSnapshotNotFound
}

func (m *mockSnapshotRepo) SnapshotOnOrBefore(ctx context.Context, id string, day time.Time) (*domain.Snapshot, error) {
	return nil, domain.ErrSnapshotNotFound
}

func (m *mockSnapshotRepo) SnapshotsInRange(ctx context.Context, id string, start, end time.Time) ([]domain.Snapshot, error) {
	m.rangeCalls++
	m.gotStart = start
	m.gotEnd = end
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return m.history, nil
}

func (m *mockSnapshotRepo) TopLatestSnapshots(ctx context.Context, n int, minInstallCount int64) ([]domain.Snapshot, error) {
	return nil, nil
}

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func newUsecase(repo *mockSnapshotRepo) *GetExtensionUsecase {
	usecase := NewGetExtensionUsecase(repo, &config.TrendsConfig{DefaultCompareWindowDays: 30})
	usecase.now = func() time.Time { return day(31).Add(12 * time.Hour) }
	return usecase
}

func TestExecute_ReturnsLatestAndHistory(t *testing.T) {
	latest := domain.Snapshot{
		ExtensionID:  "golang.go",
		Name:         "Go",
		Publisher:    "golang",
		InstallCount: 1_000_000,
		CapturedAt:   day(31).Add(6 * time.Hour),
		CaptureDay:   day(31),
	}
	repo := &mockSnapshotRepo{
		latest:  &latest,
		history: []domain.Snapshot{latest},
	}

	detail, err := newUsecase(repo).Execute(context.Background(), "golang.go")
	require.NoError(t, err)

	assert.Equal(t, latest, detail.Latest)
	assert.Len(t, detail.History, 1)
	assert.Equal(t, day(1), repo.gotStart)
	assert.Equal(t, day(31), repo.gotEnd)
}

func TestExecute_UnknownExtensionIsNotFound(t *testing.T) {
	repo := &mockSnapshotRepo{latestErr: domain.ErrSnapshotNotFound}

	_, err := newUsecase(repo).Execute(context.Background(), "pub.ghost")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	assert.Zero(t, repo.rangeCalls, "history must not be fetched for unknown extensions")
}

func TestExecute_InvalidIDRejectedBeforeRepository(t *testing.T) {
	repo := &mockSnapshotRepo{}

	_, err := newUsecase(repo).Execute(context.Background(), "not an id")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, apperrors.ReasonInvalidExtensionID, appErr.Reason())
	assert.Zero(t, repo.latestCalls)
}
