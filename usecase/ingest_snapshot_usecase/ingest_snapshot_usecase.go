package ingest_snapshot_usecase

import (
	"context"
	"fmt"
	"time"

	"extstats/config"
	"extstats/domain"
	"extstats/port/ingest_snapshot_port"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"
	"extstats/utils/metrics"
)

// IngestBatch is the wire shape of one daily capture batch as produced by
// the external scraper: a capture timestamp plus the list of observed
// extensions.
type IngestBatch struct {
	CreatedAt string `json:"created_at"`
	Data      struct {
		Items []IngestItem `json:"items"`
	} `json:"data"`
}

// IngestItem tolerates both field-name generations of the scraper payload
// (extension_id/id, install_count/installs).
type IngestItem struct {
	ExtensionID  string   `json:"extension_id"`
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Publisher    string   `json:"publisher"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	InstallCount *int64   `json:"install_count"`
	Installs     *int64   `json:"installs"`
	Rating       *float64 `json:"rating"`
	RatingCount  *int64   `json:"rating_count"`
}

// IngestResult summarizes one ingested batch.
type IngestResult struct {
	CapturedAt    time.Time `json:"captured_at"`
	RowsReceived  int       `json:"rows_received"`
	RowsInserted  int64     `json:"rows_inserted"`
	RowsDuplicate int64     `json:"rows_duplicate"`
}

// IngestSnapshotsUsecase maps scraper batches into snapshot rows and
// appends them through the ingest port. The store's uniqueness constraint
// on (extension_id, captured_at) makes re-ingesting the same batch a no-op.
type IngestSnapshotsUsecase struct {
	ingestPort   ingest_snapshot_port.IngestSnapshotsPort
	maxBatchSize int
}

func NewIngestSnapshotsUsecase(port ingest_snapshot_port.IngestSnapshotsPort, cfg *config.IngestConfig) *IngestSnapshotsUsecase {
	return &IngestSnapshotsUsecase{
		ingestPort:   port,
		maxBatchSize: cfg.MaxBatchSize,
	}
}

func (u *IngestSnapshotsUsecase) Execute(ctx context.Context, batch IngestBatch) (*IngestResult, error) {
	capturedAt, err := time.Parse(time.RFC3339, batch.CreatedAt)
	if err != nil {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("could not parse created_at timestamp: %v", err),
			apperrors.ReasonInvalidQuery,
			map[string]interface{}{"created_at": batch.CreatedAt},
		)
	}

	items := batch.Data.Items
	if len(items) == 0 {
		return nil, apperrors.ValidationError("batch contains no extensions",
			apperrors.ReasonEmptyTargetSet, nil)
	}
	if u.maxBatchSize > 0 && len(items) > u.maxBatchSize {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("batch exceeds maximum size of %d rows", u.maxBatchSize),
			apperrors.ReasonInvalidLimit,
			map[string]interface{}{"rows": len(items)},
		)
	}

	snapshots := make([]domain.Snapshot, 0, len(items))
	skipped := 0
	for _, item := range items {
		s, ok := item.toSnapshot(capturedAt)
		if !ok {
			skipped++
			continue
		}
		snapshots = append(snapshots, s)
	}

	if skipped > 0 {
		logger.SafeInfo("skipped malformed ingest rows", "skipped", skipped)
	}

	inserted, err := u.ingestPort.Execute(ctx, snapshots)
	if err != nil {
		return nil, err
	}

	metrics.IngestRowsTotal.WithLabelValues(metrics.OutcomeInserted).Add(float64(inserted))
	metrics.IngestRowsTotal.WithLabelValues(metrics.OutcomeDuplicate).Add(float64(int64(len(snapshots)) - inserted))
	metrics.IngestRowsTotal.WithLabelValues(metrics.OutcomeSkipped).Add(float64(skipped))

	return &IngestResult{
		CapturedAt:    capturedAt,
		RowsReceived:  len(items),
		RowsInserted:  inserted,
		RowsDuplicate: int64(len(snapshots)) - inserted,
	}, nil
}

func (item IngestItem) toSnapshot(capturedAt time.Time) (domain.Snapshot, bool) {
	id := item.ExtensionID
	if id == "" {
		id = item.ID
	}
	if domain.ValidateExtensionID(id) != nil {
		return domain.Snapshot{}, false
	}

	installs := item.InstallCount
	if installs == nil {
		installs = item.Installs
	}
	if installs == nil || *installs < 0 {
		return domain.Snapshot{}, false
	}

	return domain.Snapshot{
		ExtensionID:  id,
		Name:         item.Name,
		Publisher:    item.Publisher,
		Description:  item.Description,
		Version:      item.Version,
		InstallCount: *installs,
		Rating:       item.Rating,
		RatingCount:  item.RatingCount,
		CapturedAt:   capturedAt,
	}, true
}
