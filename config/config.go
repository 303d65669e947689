package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Trends   TrendsConfig   `json:"trends"`
	Search   SearchConfig   `json:"search"`
	Ingest   IngestConfig   `json:"ingest"`
	Cache    CacheConfig    `json:"cache"`
	Logging  LoggingConfig  `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
	// Timezone used to bucket captured_at timestamps into calendar days.
	Timezone string `json:"timezone" env:"DB_STATS_TIMEZONE" default:"America/Los_Angeles"`
}

type TrendsConfig struct {
	DefaultGrowthWindowDays  int `json:"default_growth_window_days" env:"TRENDS_DEFAULT_GROWTH_WINDOW_DAYS" default:"7"`
	DefaultCompareWindowDays int `json:"default_compare_window_days" env:"TRENDS_DEFAULT_COMPARE_WINDOW_DAYS" default:"30"`
	MaxWindowDays            int `json:"max_window_days" env:"TRENDS_MAX_WINDOW_DAYS" default:"365"`
	DefaultGrowthLimit       int `json:"default_growth_limit" env:"TRENDS_DEFAULT_GROWTH_LIMIT" default:"20"`
	MaxGrowthLimit           int `json:"max_growth_limit" env:"TRENDS_MAX_GROWTH_LIMIT" default:"100"`
	MaxCompareTargets        int `json:"max_compare_targets" env:"TRENDS_MAX_COMPARE_TARGETS" default:"10"`
	// CandidatePoolSize bounds how many latest-snapshot rows are considered
	// for the growth ranking.
	CandidatePoolSize int `json:"candidate_pool_size" env:"TRENDS_CANDIDATE_POOL_SIZE" default:"500"`
	// MinInstallCount filters very small extensions out of the ranking pool.
	MinInstallCount int64 `json:"min_install_count" env:"TRENDS_MIN_INSTALL_COUNT" default:"1000"`
	// BaselineFanout bounds concurrent baseline lookups per ranking request.
	BaselineFanout int `json:"baseline_fanout" env:"TRENDS_BASELINE_FANOUT" default:"8"`
	// GrowthSinceFirstSeen, when enabled, falls back to the earliest
	// available snapshot as the baseline for extensions newly observed
	// mid-window instead of excluding them from the ranking.
	GrowthSinceFirstSeen bool `json:"growth_since_first_seen" env:"TRENDS_GROWTH_SINCE_FIRST_SEEN" default:"false"`
}

type SearchConfig struct {
	DefaultLimit    int   `json:"default_limit" env:"SEARCH_DEFAULT_LIMIT" default:"10"`
	MaxLimit        int   `json:"max_limit" env:"SEARCH_MAX_LIMIT" default:"50"`
	MinQueryLength  int   `json:"min_query_length" env:"SEARCH_MIN_QUERY_LENGTH" default:"2"`
	MinInstallCount int64 `json:"min_install_count" env:"SEARCH_MIN_INSTALL_COUNT" default:"100"`
}

type IngestConfig struct {
	ClientKey     string `json:"-" env:"INGEST_CLIENT_KEY"`
	ClientKeyFile string `json:"-" env:"INGEST_CLIENT_KEY_FILE"`
	MaxBatchSize  int    `json:"max_batch_size" env:"INGEST_MAX_BATCH_SIZE" default:"10000"`
}

type CacheConfig struct {
	LatestSnapshotSize int           `json:"latest_snapshot_size" env:"CACHE_LATEST_SNAPSHOT_SIZE" default:"1024"`
	LatestSnapshotTTL  time.Duration `json:"latest_snapshot_ttl" env:"CACHE_LATEST_SNAPSHOT_TTL" default:"300s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load ingest key from file if configured (Docker Secrets support)
	if config.Ingest.ClientKeyFile != "" {
		content, err := os.ReadFile(config.Ingest.ClientKeyFile)
		if err == nil {
			config.Ingest.ClientKey = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any) or keep it empty
	}

	return config, nil
}

// Load is an alias for NewConfig for backward compatibility
func Load() (*Config, error) {
	return NewConfig()
}
