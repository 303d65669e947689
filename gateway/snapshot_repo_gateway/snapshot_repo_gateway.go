package snapshot_repo_gateway

import (
	"context"
	"errors"
	"time"

	"extstats/domain"
	"extstats/driver/stats_db"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"
	"extstats/utils/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SnapshotRepoGateway implements the SnapshotRepositoryPort over the
// stats_db driver. LatestSnapshot lookups are memoized through a short-TTL
// LRU to avoid duplicate round-trips when ranking and comparison requests
// overlap; every other read goes straight to the store.
type SnapshotRepoGateway struct {
	repo        *stats_db.StatsDBRepository
	latestCache *expirable.LRU[string, domain.Snapshot]
}

// NewSnapshotRepoGateway creates a gateway over the given pool. cacheSize
// and cacheTTL configure the latest-snapshot memo; a cacheSize of zero
// disables it.
func NewSnapshotRepoGateway(pool stats_db.DBPool, timezone string, cacheSize int, cacheTTL time.Duration) *SnapshotRepoGateway {
	g := &SnapshotRepoGateway{
		repo: stats_db.NewStatsDBRepository(pool, timezone),
	}
	if cacheSize > 0 {
		g.latestCache = expirable.NewLRU[string, domain.Snapshot](cacheSize, nil, cacheTTL)
	}
	return g
}

func (g *SnapshotRepoGateway) LatestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error) {
	if g.latestCache != nil {
		if cached, ok := g.latestCache.Get(extensionID); ok {
			metrics.LatestSnapshotCacheHits.Inc()
			return &cached, nil
		}
	}

	metrics.LatestSnapshotCacheMisses.Inc()
	snapshot, err := g.repo.LatestSnapshot(ctx, extensionID)
	if err != nil {
		return nil, g.wrapError(err, "LatestSnapshot", extensionID)
	}

	if g.latestCache != nil {
		g.latestCache.Add(extensionID, *snapshot)
	}

	return snapshot, nil
}

func (g *SnapshotRepoGateway) EarliestSnapshot(ctx context.Context, extensionID string) (*domain.Snapshot, error) {
	snapshot, err := g.repo.EarliestSnapshot(ctx, extensionID)
	if err != nil {
		return nil, g.wrapError(err, "EarliestSnapshot", extensionID)
	}
	return snapshot, nil
}

func (g *SnapshotRepoGateway) SnapshotOnOrBefore(ctx context.Context, extensionID string, day time.Time) (*domain.Snapshot, error) {
	snapshot, err := g.repo.SnapshotOnOrBefore(ctx, extensionID, day)
	if err != nil {
		return nil, g.wrapError(err, "SnapshotOnOrBefore", extensionID)
	}
	return snapshot, nil
}

func (g *SnapshotRepoGateway) SnapshotsInRange(ctx context.Context, extensionID string, startDay, endDay time.Time) ([]domain.Snapshot, error) {
	snapshots, err := g.repo.SnapshotsInRange(ctx, extensionID, startDay, endDay)
	if err != nil {
		return nil, g.wrapError(err, "SnapshotsInRange", extensionID)
	}
	return snapshots, nil
}

func (g *SnapshotRepoGateway) TopLatestSnapshots(ctx context.Context, n int, minInstallCount int64) ([]domain.Snapshot, error) {
	snapshots, err := g.repo.TopLatestSnapshots(ctx, n, minInstallCount)
	if err != nil {
		return nil, g.wrapError(err, "TopLatestSnapshots", "")
	}
	return snapshots, nil
}

// wrapError keeps not-found sentinels intact for callers using errors.Is and
// wraps everything else as a database error.
func (g *SnapshotRepoGateway) wrapError(err error, method, extensionID string) error {
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		return err
	}

	dbErr := apperrors.DatabaseError("snapshot repository query failed", err, map[string]interface{}{
		"gateway":      "SnapshotRepoGateway",
		"method":       method,
		"extension_id": extensionID,
	})
	apperrors.LogError(logger.Logger, dbErr, method)
	return dbErr
}
