// Command import_snapshots backfills the snapshot store from scraper
// capture files. The scraper writes one JSON file per day; pointing this
// tool at a directory of them replays history into Postgres. Re-importing
// a day that is already stored is a no-op.
//
// Usage:
//
//	import_snapshots <file-or-glob> [more files...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"extstats/config"
	"extstats/driver/stats_db"
	"extstats/gateway/ingest_snapshot_gateway"
	"extstats/usecase/ingest_snapshot_usecase"
	"extstats/utils/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_snapshots <file-or-glob> [more files...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger.InitLoggerWithLevel(cfg.Logging.Level)

	ctx := context.Background()
	pool, err := stats_db.InitDBConnectionPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	gateway := ingest_snapshot_gateway.NewIngestSnapshotsGateway(pool, cfg.Database.Timezone)
	usecase := ingest_snapshot_usecase.NewIngestSnapshotsUsecase(gateway, &cfg.Ingest)

	files := expandArgs(os.Args[1:])
	if len(files) == 0 {
		log.Fatal("no capture files matched")
	}

	var inserted, duplicate int64
	for _, path := range files {
		result, err := importFile(ctx, usecase, path)
		if err != nil {
			log.Fatalf("import of %s failed: %v", path, err)
		}
		inserted += result.RowsInserted
		duplicate += result.RowsDuplicate
		fmt.Printf("%s: %d rows received, %d inserted, %d already present\n",
			filepath.Base(path), result.RowsReceived, result.RowsInserted, result.RowsDuplicate)
	}

	fmt.Printf("done: %d files, %d rows inserted, %d duplicates skipped\n",
		len(files), inserted, duplicate)
}

func importFile(ctx context.Context, usecase *ingest_snapshot_usecase.IngestSnapshotsUsecase, path string) (*ingest_snapshot_usecase.IngestResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}

	var batch ingest_snapshot_usecase.IngestBatch
	if err := json.Unmarshal(content, &batch); err != nil {
		return nil, fmt.Errorf("parse capture file: %w", err)
	}

	return usecase.Execute(ctx, batch)
}

// expandArgs resolves glob patterns so the tool works the same whether the
// shell expanded them or not.
func expandArgs(args []string) []string {
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files
}
