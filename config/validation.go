package config

import (
	"fmt"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateTrendsConfig(&config.Trends); err != nil {
		return fmt.Errorf("trends config validation failed: %w", err)
	}

	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid stats timezone %q: %w", config.Timezone, err)
	}

	return nil
}

func validateTrendsConfig(config *TrendsConfig) error {
	if config.DefaultGrowthWindowDays < 1 {
		return fmt.Errorf("default growth window must be at least 1 day, got %d", config.DefaultGrowthWindowDays)
	}

	if config.DefaultCompareWindowDays < 1 {
		return fmt.Errorf("default compare window must be at least 1 day, got %d", config.DefaultCompareWindowDays)
	}

	if config.MaxWindowDays < config.DefaultGrowthWindowDays || config.MaxWindowDays < config.DefaultCompareWindowDays {
		return fmt.Errorf("max window days %d must cover the defaults", config.MaxWindowDays)
	}

	if config.DefaultGrowthLimit < 1 || config.MaxGrowthLimit < config.DefaultGrowthLimit {
		return fmt.Errorf("growth limits misconfigured: default %d, max %d", config.DefaultGrowthLimit, config.MaxGrowthLimit)
	}

	if config.MaxCompareTargets < 1 {
		return fmt.Errorf("max compare targets must be at least 1, got %d", config.MaxCompareTargets)
	}

	if config.CandidatePoolSize < 1 {
		return fmt.Errorf("candidate pool size must be at least 1, got %d", config.CandidatePoolSize)
	}

	if config.MinInstallCount < 0 {
		return fmt.Errorf("min install count must not be negative, got %d", config.MinInstallCount)
	}

	if config.BaselineFanout < 1 {
		return fmt.Errorf("baseline fanout must be at least 1, got %d", config.BaselineFanout)
	}

	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	if config.DefaultLimit < 1 || config.MaxLimit < config.DefaultLimit {
		return fmt.Errorf("search limits misconfigured: default %d, max %d", config.DefaultLimit, config.MaxLimit)
	}

	if config.MinQueryLength < 1 {
		return fmt.Errorf("min query length must be at least 1, got %d", config.MinQueryLength)
	}

	if config.MinInstallCount < 0 {
		return fmt.Errorf("min install count must not be negative, got %d", config.MinInstallCount)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.LatestSnapshotSize < 1 {
		return fmt.Errorf("latest snapshot cache size must be at least 1, got %d", config.LatestSnapshotSize)
	}

	if config.LatestSnapshotTTL <= 0 {
		return fmt.Errorf("latest snapshot cache TTL must be positive, got %v", config.LatestSnapshotTTL)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", config.Level)
	}

	switch config.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", config.Format)
	}

	return nil
}
