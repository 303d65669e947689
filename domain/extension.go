package domain

// ExtensionSummary is a lightweight latest-state view of an extension,
// used by the search endpoint for autocomplete.
type ExtensionSummary struct {
	ExtensionID  string `json:"extension_id"`
	Name         string `json:"name"`
	Publisher    string `json:"publisher"`
	InstallCount int64  `json:"install_count"`
}
