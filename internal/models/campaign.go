package models

import (
	"errors"
	"time"
)

// ErrCampaignNotFound is returned when a campaign does not exist or is not
// owned by the requesting user. The two cases are deliberately
// indistinguishable to callers.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft    CampaignStatus = "draft"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusPaused   CampaignStatus = "paused"
	CampaignStatusSyncing  CampaignStatus = "syncing" // transient: a collection run is queued or in flight
	CampaignStatusArchived CampaignStatus = "archived"
)

// Campaign is a user-configured recurring lead-collection target across one
// or more platforms.
type Campaign struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Platforms []string       `json:"platforms"`
	Status    CampaignStatus `json:"status"`
	// ConnectedCapabilities lists platforms for which an automated
	// server-side fetch credential has been configured. Extension-required
	// platforms without an entry here must be fetched by the browser helper.
	ConnectedCapabilities []string   `json:"connected_capabilities,omitempty"`
	LastSyncAt            *time.Time `json:"last_sync_at,omitempty"`
	NextScheduledSyncAt   *time.Time `json:"next_scheduled_sync_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// HasCapability reports whether an automated-fetch capability is configured
// for the given platform.
func (c *Campaign) HasCapability(platform string) bool {
	for _, name := range c.ConnectedCapabilities {
		if name == platform {
			return true
		}
	}
	return false
}

// PrimaryPlatform returns the first enabled platform, used to label a
// SyncRecord when a run covers multiple platforms.
func (c *Campaign) PrimaryPlatform() string {
	if len(c.Platforms) == 0 {
		return ""
	}
	return c.Platforms[0]
}

// IsSyncing reports whether the campaign's own status flag marks a run as
// active. This flag can lag the sync_records table; it is the fast-path
// half of the concurrency check, not the authority.
func (c *Campaign) IsSyncing() bool {
	return c.Status == CampaignStatusSyncing
}
