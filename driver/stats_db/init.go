package stats_db

import (
	"context"
	"fmt"
	"os"

	"extstats/config"
	"extstats/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func InitDBConnectionPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		logger.SafeError("Failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.SafeError("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func getDBConnectionString() string {
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("No .env file loaded, relying on process environment")
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
}
