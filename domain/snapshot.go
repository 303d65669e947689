package domain

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is one dated observation of an extension's marketplace metrics.
// InstallCount is non-negative but not assumed monotonic across days:
// upstream corrections can lower it.
type Snapshot struct {
	ExtensionID  string    `json:"extension_id"`
	Name         string    `json:"name"`
	Publisher    string    `json:"publisher"`
	Description  string    `json:"description,omitempty"`
	Version      string    `json:"version,omitempty"`
	InstallCount int64     `json:"install_count"`
	Rating       *float64  `json:"rating,omitempty"`
	RatingCount  *int64    `json:"rating_count,omitempty"`
	CapturedAt   time.Time `json:"captured_at"`

	// CaptureDay is the calendar-day bucket computed by the repository in
	// its configured timezone. Zero when the originating query did not
	// bucket by day.
	CaptureDay time.Time `json:"-"`
}

// Day returns the calendar day of the capture. The repository-computed
// bucket wins when present; otherwise the capture timestamp is truncated
// to midnight UTC.
func (s Snapshot) Day() time.Time {
	if !s.CaptureDay.IsZero() {
		return TruncateToDay(s.CaptureDay)
	}
	return TruncateToDay(s.CapturedAt)
}

// TruncateToDay normalizes a timestamp to its calendar day at midnight UTC.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateExtensionID checks that an identifier is syntactically a
// publisher.name token.
func ValidateExtensionID(id string) error {
	parts := strings.SplitN(id, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("extension id %q is not in publisher.name form", id)
	}
	for _, part := range parts {
		for _, r := range part {
			if !isIdentRune(r) {
				return fmt.Errorf("extension id %q contains invalid character %q", id, r)
			}
		}
	}
	return nil
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
