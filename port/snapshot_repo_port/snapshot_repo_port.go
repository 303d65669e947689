package snapshot_repo_port

import (
	"context"
	"time"

	"extstats/domain"
)

// SnapshotRepositoryPort is the read contract over the dated per-extension
// snapshot store. Absence is signaled with domain.ErrSnapshotNotFound;
// repository-level failures surface as database errors.
type SnapshotRepositoryPort interface {
	// LatestSnapshot returns the most recent snapshot for the extension.
	LatestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error)

	// EarliestSnapshot returns the oldest snapshot for the extension.
	EarliestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error)

	// SnapshotOnOrBefore returns the most recent snapshot whose capture day
	// is on or before the given day.
	SnapshotOnOrBefore(ctx context.Context, extensionID string, day time.Time) (*domain.Snapshot, error)

	// SnapshotsInRange returns one snapshot per day within the inclusive
	// day range, ascending.
	SnapshotsInRange(ctx context.Context, extensionID string, startDay, endDay time.Time) ([]domain.Snapshot, error)

	// TopLatestSnapshots returns the latest snapshot per extension ordered
	// by install count descending, capped at n.
	TopLatestSnapshots(ctx context.Context, n int, minInstallCount int64) ([]domain.Snapshot, error)
}
