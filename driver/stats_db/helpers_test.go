package stats_db

import (
	"time"

	"extstats/domain"
)

func testSnapshotBatch(capturedAt time.Time) []domain.Snapshot {
	return []domain.Snapshot{
		{
			ExtensionID:  "ms-python.python",
			Name:         "Python",
			Publisher:    "ms-python",
			Version:      "2026.8.0",
			InstallCount: 98_000_000,
			CapturedAt:   capturedAt,
		},
		{
			ExtensionID:  "github.copilot",
			Name:         "GitHub Copilot",
			Publisher:    "github",
			Version:      "1.250.0",
			InstallCount: 22_000_000,
			CapturedAt:   capturedAt,
		},
	}
}
