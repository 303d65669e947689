package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "extstats_http_request_seconds",
		Help:    "Time spent serving an HTTP request.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	GrowthRankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "extstats_growth_ranking_seconds",
		Help:    "Time spent computing one growth ranking.",
		Buckets: prometheus.DefBuckets,
	})

	BaselineLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extstats_baseline_lookups_total",
		Help: "Total number of baseline snapshot lookups by outcome.",
	}, []string{"outcome"})

	ComparisonTargetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extstats_comparison_targets_total",
		Help: "Total number of extension ids requested across comparison queries.",
	})

	ComparisonUnknownTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extstats_comparison_unknown_total",
		Help: "Total number of requested ids with no data in the window.",
	})

	LatestSnapshotCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extstats_latest_snapshot_cache_hits_total",
		Help: "Total number of latest-snapshot reads served from the memo cache.",
	})

	LatestSnapshotCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extstats_latest_snapshot_cache_misses_total",
		Help: "Total number of latest-snapshot reads that hit the store.",
	})

	IngestRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extstats_ingest_rows_total",
		Help: "Total number of ingested snapshot rows by outcome.",
	}, []string{"outcome"})
)

// Baseline lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeExcluded = "excluded"
	OutcomeError    = "error"
)

// Ingest row outcomes.
const (
	OutcomeInserted  = "inserted"
	OutcomeDuplicate = "duplicate"
	OutcomeSkipped   = "skipped"
)
