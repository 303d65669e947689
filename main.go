package main

import (
	"context"
	"fmt"

	"extstats/config"
	"extstats/di"
	"extstats/driver/stats_db"
	"extstats/job"
	"extstats/rest"
	"extstats/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	log := logger.InitLoggerWithLevel(cfg.Logging.Level)
	log.Info("starting extension stats server")

	ctx := context.Background()
	pool, err := stats_db.InitDBConnectionPool(ctx, cfg)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	scheduler := job.NewScheduler()
	scheduler.Add(job.NewRankingWarmupJob(container.RankGrowthUsecase, &cfg.Trends))
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("error starting server", "error", err)
		panic(err)
	}
}
