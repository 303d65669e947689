package domain

import "time"

// ComparisonSeries is one extension's values aligned against a shared day
// axis. Values has exactly one entry per axis day; a nil entry marks a day
// with no snapshot for this extension. Gaps are never interpolated or
// zero-filled so downstream charts render them as breaks, not zero dips.
type ComparisonSeries struct {
	ExtensionID string   `json:"extension_id"`
	Name        string   `json:"name"`
	Publisher   string   `json:"publisher"`
	Values      []*int64 `json:"values"`
}

// ComparisonResult carries aligned series for a requested extension set.
// Days is the canonical axis: the ascending union of all days with data
// across the requested extensions. Unknown lists requested ids with no data
// in the window; they are omitted from Series without failing the batch.
type ComparisonResult struct {
	Days    []time.Time        `json:"-"`
	Series  []ComparisonSeries `json:"series"`
	Unknown []string           `json:"unknown,omitempty"`
}
