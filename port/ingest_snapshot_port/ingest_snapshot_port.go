package ingest_snapshot_port

import (
	"context"

	"extstats/domain"
)

// IngestSnapshotsPort appends a batch of snapshot rows to the store.
// The store deduplicates on (extension_id, captured_at); the return value
// counts rows actually inserted.
type IngestSnapshotsPort interface {
	Execute(ctx context.Context, batch []domain.Snapshot) (int64, error)
}
