package get_extension_usecase

import (
	"context"
	"errors"
	"time"

	"extstats/config"
	"extstats/domain"
	"extstats/port/snapshot_repo_port"
	apperrors "extstats/utils/errors"
)

// ExtensionDetail is the latest observed state of one extension together
// with its own install-count history over the detail window.
type ExtensionDetail struct {
	Latest  domain.Snapshot
	History []domain.Snapshot
}

// GetExtensionUsecase resolves a single extension's latest snapshot and
// recent history for the detail view.
type GetExtensionUsecase struct {
	repo       snapshot_repo_port.SnapshotRepositoryPort
	windowDays int

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewGetExtensionUsecase(repo snapshot_repo_port.SnapshotRepositoryPort, cfg *config.TrendsConfig) *GetExtensionUsecase {
	return &GetExtensionUsecase{
		repo:       repo,
		windowDays: cfg.DefaultCompareWindowDays,
		now:        time.Now,
	}
}

func (u *GetExtensionUsecase) Execute(ctx context.Context, extensionID string) (*ExtensionDetail, error) {
	if err := domain.ValidateExtensionID(extensionID); err != nil {
		return nil, apperrors.ValidationError(err.Error(), apperrors.ReasonInvalidExtensionID,
			map[string]interface{}{"extension_id": extensionID})
	}

	latest, err := u.repo.LatestSnapshot(ctx, extensionID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil, apperrors.NotFoundError("extension has no recorded snapshots", err,
				map[string]interface{}{"extension_id": extensionID})
		}
		return nil, err
	}

	today := domain.TruncateToDay(u.now())
	startDay := today.AddDate(0, 0, -u.windowDays)

	history, err := u.repo.SnapshotsInRange(ctx, extensionID, startDay, today)
	if err != nil {
		return nil, err
	}

	return &ExtensionDetail{Latest: *latest, History: history}, nil
}
