package rest

import "extstats/domain"

type GrowthResponse struct {
	WindowDays int                `json:"window_days"`
	Rows       []domain.GrowthRow `json:"rows"`
}

type CompareResponse struct {
	WindowDays int                       `json:"window_days"`
	Days       []string                  `json:"days"`
	Series     []domain.ComparisonSeries `json:"series"`
	Unknown    []string                  `json:"unknown,omitempty"`
}

type SearchResponse struct {
	Query   string                    `json:"query"`
	Results []domain.ExtensionSummary `json:"results"`
}

type ExtensionDetailResponse struct {
	Extension domain.Snapshot `json:"extension"`
	History   HistoryResponse `json:"history"`
}

type HistoryResponse struct {
	Days     []string `json:"days"`
	Installs []int64  `json:"installs"`
}

type IngestResponse struct {
	CapturedAt    string `json:"captured_at"`
	RowsReceived  int    `json:"rows_received"`
	RowsInserted  int64  `json:"rows_inserted"`
	RowsDuplicate int64  `json:"rows_duplicate"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
