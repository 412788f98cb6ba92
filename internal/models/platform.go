package models

// Platform describes a lead source. Platform definitions are reference data:
// the scheduler reads them but never mutates them.
type Platform struct {
	Name string `json:"name" yaml:"name"`
	// IsChronological marks feeds that are strictly time-ordered, where
	// re-fetching shortly after a run is unlikely to surface new items.
	IsChronological bool `json:"is_chronological" yaml:"is_chronological"`
	// RequiresExtensionSync marks platforms whose fetch must be performed by
	// the client-side browser extension unless an automated-fetch capability
	// is connected for the campaign.
	RequiresExtensionSync bool `json:"requires_extension_sync" yaml:"requires_extension_sync"`
}
