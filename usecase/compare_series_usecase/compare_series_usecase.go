package compare_series_usecase

import (
	"context"
	"sort"
	"time"

	"extstats/config"
	"extstats/domain"
	"extstats/port/snapshot_repo_port"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"
	"extstats/utils/metrics"
	"extstats/validation"

	"golang.org/x/sync/errgroup"
)

// CompareSeriesUsecase aligns install-count series for a set of extensions
// against one canonical day axis so multi-extension charts share an x-axis.
type CompareSeriesUsecase struct {
	repo            snapshot_repo_port.SnapshotRepositoryPort
	windowValidator *validation.WindowValidator
	targetValidator *validation.TargetSetValidator
	fanout          int

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewCompareSeriesUsecase(repo snapshot_repo_port.SnapshotRepositoryPort, cfg *config.TrendsConfig) *CompareSeriesUsecase {
	return &CompareSeriesUsecase{
		repo:            repo,
		windowValidator: &validation.WindowValidator{MaxWindowDays: cfg.MaxWindowDays},
		targetValidator: &validation.TargetSetValidator{MaxTargets: cfg.MaxCompareTargets},
		fanout:          cfg.BaselineFanout,
		now:             time.Now,
	}
}

// Execute builds aligned comparison series for the requested extensions.
// The day axis is the ascending union of days with data across the set:
// extensions captured independently may miss days, and a day absent from
// every series is absent from the axis. Days an extension lacks are nil gap
// markers, never zeros. Requested ids with no data in the window are
// reported in Unknown and omitted from Series without failing the batch.
func (u *CompareSeriesUsecase) Execute(ctx context.Context, extensionIDs []string, windowDays int) (*domain.ComparisonResult, error) {
	if result := u.targetValidator.Validate(ctx, extensionIDs); !result.Valid {
		if result.Errors[0].Reason == apperrors.ReasonTooManyTargets {
			return nil, apperrors.TooManyTargetsError(result.Errors[0].Message, map[string]interface{}{
				"requested": len(extensionIDs),
			})
		}
		return nil, result.ToAppError()
	}
	if appErr := u.windowValidator.Validate(ctx, windowDays).ToAppError(); appErr != nil {
		return nil, appErr
	}

	ids := dedupe(extensionIDs)

	today := domain.TruncateToDay(u.now())
	startDay := today.AddDate(0, 0, -windowDays)

	perID := make([][]domain.Snapshot, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.fanout)

	for i, id := range ids {
		g.Go(func() error {
			snapshots, err := u.repo.SnapshotsInRange(gctx, id, startDay, today)
			if err != nil {
				return err
			}
			perID[i] = snapshots
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	axis := buildDayAxis(perID)

	result := &domain.ComparisonResult{Days: axis}
	for i, id := range ids {
		if len(perID[i]) == 0 {
			result.Unknown = append(result.Unknown, id)
			continue
		}
		result.Series = append(result.Series, alignSeries(perID[i], axis))
	}

	metrics.ComparisonTargetsTotal.Add(float64(len(ids)))
	metrics.ComparisonUnknownTotal.Add(float64(len(result.Unknown)))

	logger.SafeInfo("comparison series aligned",
		"requested", len(ids),
		"resolved", len(result.Series),
		"unknown", len(result.Unknown),
		"axis_days", len(axis))

	return result, nil
}

// buildDayAxis returns the sorted union of capture days across all series.
func buildDayAxis(perID [][]domain.Snapshot) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, snapshots := range perID {
		for _, s := range snapshots {
			seen[s.Day()] = struct{}{}
		}
	}

	axis := make([]time.Time, 0, len(seen))
	for day := range seen {
		axis = append(axis, day)
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i].Before(axis[j]) })

	return axis
}

// alignSeries produces one value per axis day: the install count on an
// exact-day match, otherwise a nil gap marker.
func alignSeries(snapshots []domain.Snapshot, axis []time.Time) domain.ComparisonSeries {
	byDay := make(map[time.Time]int64, len(snapshots))
	for _, s := range snapshots {
		byDay[s.Day()] = s.InstallCount
	}

	// Name and publisher may change between captures; report the most
	// recent ones. The range is ascending so the last entry is latest.
	latest := snapshots[len(snapshots)-1]

	values := make([]*int64, len(axis))
	for i, day := range axis {
		if count, ok := byDay[day]; ok {
			v := count
			values[i] = &v
		}
	}

	return domain.ComparisonSeries{
		ExtensionID: latest.ExtensionID,
		Name:        latest.Name,
		Publisher:   latest.Publisher,
		Values:      values,
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
