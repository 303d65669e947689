package di

import (
	"extstats/config"
	"extstats/gateway/ingest_snapshot_gateway"
	"extstats/gateway/search_extensions_gateway"
	"extstats/gateway/snapshot_repo_gateway"
	"extstats/usecase/compare_series_usecase"
	"extstats/usecase/get_extension_usecase"
	"extstats/usecase/ingest_snapshot_usecase"
	"extstats/usecase/rank_growth_usecase"
	"extstats/usecase/search_extensions_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	RankGrowthUsecase       *rank_growth_usecase.RankGrowthUsecase
	CompareSeriesUsecase    *compare_series_usecase.CompareSeriesUsecase
	SearchExtensionsUsecase *search_extensions_usecase.SearchExtensionsUsecase
	GetExtensionUsecase     *get_extension_usecase.GetExtensionUsecase
	IngestSnapshotsUsecase  *ingest_snapshot_usecase.IngestSnapshotsUsecase
	SnapshotRepoGateway     *snapshot_repo_gateway.SnapshotRepoGateway
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	snapshotRepoGatewayImpl := snapshot_repo_gateway.NewSnapshotRepoGateway(
		pool,
		cfg.Database.Timezone,
		cfg.Cache.LatestSnapshotSize,
		cfg.Cache.LatestSnapshotTTL,
	)
	rankGrowthUsecase := rank_growth_usecase.NewRankGrowthUsecase(snapshotRepoGatewayImpl, &cfg.Trends)
	compareSeriesUsecase := compare_series_usecase.NewCompareSeriesUsecase(snapshotRepoGatewayImpl, &cfg.Trends)
	getExtensionUsecase := get_extension_usecase.NewGetExtensionUsecase(snapshotRepoGatewayImpl, &cfg.Trends)

	searchGatewayImpl := search_extensions_gateway.NewSearchExtensionsGateway(
		pool, cfg.Database.Timezone, cfg.Search.MinInstallCount)
	searchExtensionsUsecase := search_extensions_usecase.NewSearchExtensionsUsecase(searchGatewayImpl, &cfg.Search)

	ingestGatewayImpl := ingest_snapshot_gateway.NewIngestSnapshotsGateway(pool, cfg.Database.Timezone)
	ingestSnapshotsUsecase := ingest_snapshot_usecase.NewIngestSnapshotsUsecase(ingestGatewayImpl, &cfg.Ingest)

	return &ApplicationComponents{
		RankGrowthUsecase:       rankGrowthUsecase,
		CompareSeriesUsecase:    compareSeriesUsecase,
		SearchExtensionsUsecase: searchExtensionsUsecase,
		GetExtensionUsecase:     getExtensionUsecase,
		IngestSnapshotsUsecase:  ingestSnapshotsUsecase,
		SnapshotRepoGateway:     snapshotRepoGatewayImpl,
	}
}
