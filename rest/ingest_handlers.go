package rest

import (
	"net/http"
	"time"

	"extstats/config"
	"extstats/di"
	middleware_custom "extstats/middleware"
	"extstats/usecase/ingest_snapshot_usecase"
	apperrors "extstats/utils/errors"
	"extstats/utils/logger"

	"github.com/labstack/echo/v4"
)

// registerIngestRoutes registers the snapshot ingest route, guarded by the
// shared scraper key.
func registerIngestRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	keyMiddleware := middleware_custom.NewIngestKeyMiddleware(logger.Logger, cfg.Ingest.ClientKey)

	v1.POST("/ingest", handleIngest(container), keyMiddleware.RequireIngestKey())
}

// handleIngest accepts one scraper capture batch and appends it to the
// snapshot store.
func handleIngest(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var batch ingest_snapshot_usecase.IngestBatch
		if err := c.Bind(&batch); err != nil {
			return HandleError(c, apperrors.ValidationError(
				"request body is not a valid ingest batch",
				apperrors.ReasonInvalidQuery,
				nil,
			), "ingest_snapshots")
		}

		result, err := container.IngestSnapshotsUsecase.Execute(ctx, batch)
		if err != nil {
			return HandleError(c, err, "ingest_snapshots")
		}

		return c.JSON(http.StatusOK, IngestResponse{
			CapturedAt:    result.CapturedAt.Format(time.RFC3339),
			RowsReceived:  result.RowsReceived,
			RowsInserted:  result.RowsInserted,
			RowsDuplicate: result.RowsDuplicate,
		})
	}
}
