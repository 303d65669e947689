package job

import (
	"context"
	"time"

	"extstats/config"
	"extstats/usecase/rank_growth_usecase"
	"extstats/utils/logger"
)

// NewRankingWarmupJob computes the default growth ranking on a schedule so
// the first dashboard request after a quiet period does not pay the full
// baseline fan-out, and the latest-snapshot memo stays warm.
func NewRankingWarmupJob(usecase *rank_growth_usecase.RankGrowthUsecase, cfg *config.TrendsConfig) Job {
	return Job{
		Name:     "ranking-warmup",
		Interval: time.Hour,
		Timeout:  5 * time.Minute,
		Fn: func(ctx context.Context) error {
			rows, err := usecase.Execute(ctx, cfg.DefaultGrowthWindowDays, cfg.DefaultGrowthLimit)
			if err != nil {
				return err
			}
			logger.SafeInfo("ranking warmup completed", "rows", len(rows))
			return nil
		},
	}
}
