package rank_growth_usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"extstats/config"
	"extstats/domain"
	"extstats/port/snapshot_repo_port"
	"extstats/utils/logger"
	"extstats/utils/metrics"
	"extstats/validation"

	"golang.org/x/sync/errgroup"
)

// RankGrowthUsecase computes the fastest-growing ranking: install-count
// delta over a trailing window per extension, sorted descending.
type RankGrowthUsecase struct {
	repo            snapshot_repo_port.SnapshotRepositoryPort
	windowValidator *validation.WindowValidator
	limitValidator  *validation.LimitValidator
	candidatePool   int
	minInstallCount int64
	baselineFanout  int
	sinceFirstSeen  bool
}

func NewRankGrowthUsecase(repo snapshot_repo_port.SnapshotRepositoryPort, cfg *config.TrendsConfig) *RankGrowthUsecase {
	return &RankGrowthUsecase{
		repo:            repo,
		windowValidator: &validation.WindowValidator{MaxWindowDays: cfg.MaxWindowDays},
		limitValidator:  &validation.LimitValidator{MaxLimit: cfg.MaxGrowthLimit},
		candidatePool:   cfg.CandidatePoolSize,
		minInstallCount: cfg.MinInstallCount,
		baselineFanout:  cfg.BaselineFanout,
		sinceFirstSeen:  cfg.GrowthSinceFirstSeen,
	}
}

// Execute ranks extensions by install-count growth over the trailing window.
// Extensions without a baseline snapshot at or before latest-day minus the
// window are excluded rather than ranked with a synthetic zero, unless the
// growth-since-first-seen policy is enabled. Negative growth is kept as-is:
// install-count corrections produce real negative deltas, never clamped.
func (u *RankGrowthUsecase) Execute(ctx context.Context, windowDays, limit int) ([]domain.GrowthRow, error) {
	if appErr := u.windowValidator.Validate(ctx, windowDays).ToAppError(); appErr != nil {
		return nil, appErr
	}
	if appErr := u.limitValidator.Validate(ctx, limit).ToAppError(); appErr != nil {
		return nil, appErr
	}

	started := time.Now()
	defer func() {
		metrics.GrowthRankingDuration.Observe(time.Since(started).Seconds())
	}()

	candidates, err := u.repo.TopLatestSnapshots(ctx, u.candidatePool, u.minInstallCount)
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.GrowthRow, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.baselineFanout)

	for i, latest := range candidates {
		g.Go(func() error {
			baseline, err := u.baselineFor(gctx, latest, windowDays)
			if err != nil {
				if errors.Is(err, domain.ErrSnapshotNotFound) {
					// Insufficient history: excluded from the ranking.
					metrics.BaselineLookupsTotal.WithLabelValues(metrics.OutcomeExcluded).Inc()
					return nil
				}
				metrics.BaselineLookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
				return err
			}
			metrics.BaselineLookupsTotal.WithLabelValues(metrics.OutcomeFound).Inc()

			rows[i] = &domain.GrowthRow{
				ExtensionID:  latest.ExtensionID,
				Name:         latest.Name,
				Publisher:    latest.Publisher,
				InstallCount: latest.InstallCount,
				Rating:       latest.Rating,
				Growth:       latest.InstallCount - baseline.InstallCount,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]domain.GrowthRow, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			ranked = append(ranked, *row)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Growth != ranked[j].Growth {
			return ranked[i].Growth > ranked[j].Growth
		}
		if ranked[i].InstallCount != ranked[j].InstallCount {
			return ranked[i].InstallCount > ranked[j].InstallCount
		}
		return ranked[i].ExtensionID < ranked[j].ExtensionID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	logger.SafeInfo("growth ranking computed",
		"window_days", windowDays,
		"candidates", len(candidates),
		"ranked", len(ranked))

	return ranked, nil
}

func (u *RankGrowthUsecase) baselineFor(ctx context.Context, latest domain.Snapshot, windowDays int) (*domain.Snapshot, error) {
	targetDay := latest.Day().AddDate(0, 0, -windowDays)

	baseline, err := u.repo.SnapshotOnOrBefore(ctx, latest.ExtensionID, targetDay)
	if err == nil {
		return baseline, nil
	}
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, err
	}

	if !u.sinceFirstSeen {
		return nil, err
	}

	// Policy fallback: growth since first seen for extensions newly
	// observed mid-window.
	return u.repo.EarliestSnapshot(ctx, latest.ExtensionID)
}
