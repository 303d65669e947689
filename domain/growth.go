package domain

// GrowthRow is one entry in the fastest-growing ranking. Growth is the
// install-count delta between the latest snapshot and the baseline snapshot
// at or before latest-day minus the window. Extensions without a baseline
// are excluded from the ranking rather than reported here with a synthetic
// zero.
type GrowthRow struct {
	ExtensionID  string   `json:"extension_id"`
	Name         string   `json:"name"`
	Publisher    string   `json:"publisher"`
	InstallCount int64    `json:"install_count"`
	Rating       *float64 `json:"rating,omitempty"`
	Growth       int64    `json:"growth"`
}
