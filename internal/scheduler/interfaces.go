package scheduler

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/leadloop/leadloop/internal/models"
)

// CampaignStore is the campaign persistence surface the scheduler depends on.
type CampaignStore interface {
	GetOwned(ctx context.Context, id, userID string) (*models.Campaign, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*models.Campaign, error)
	TryMarkSyncing(ctx context.Context, id string) (bool, error)
	ResetSyncing(ctx context.Context, id string) error
	SetNextScheduledSync(ctx context.Context, id string, at time.Time) error
}

// SyncRecordStore is the sync record persistence surface the scheduler depends on.
type SyncRecordStore interface {
	Create(ctx context.Context, record *models.SyncRecord) error
	GetActiveByCampaign(ctx context.Context, campaignID string) (*models.SyncRecord, error)
	Finalize(ctx context.Context, id string, status models.SyncStatus, leadsFound, resultsCreated int, errorMessage string, completedAt time.Time) error
}

// StaleRunStore is the persistence surface the reaper needs.
type StaleRunStore interface {
	ReapStale(ctx context.Context, timeout time.Duration) ([]models.ReapedSync, error)
}

// PlatformRegistry answers platform trait lookups.
type PlatformRegistry interface {
	RequiresExtension(name string) bool
	AnyChronological(names []string) bool
}

// Dispatcher hands an accepted sync off to the worker queue.
type Dispatcher interface {
	Dispatch(ctx context.Context, job SyncJob) error
}

// QuotaCharger records quota consumption for confirmed re-syncs inside the
// chronological confirmation band.
type QuotaCharger interface {
	ChargeConfirmedSync(ctx context.Context, userID, campaignID, syncID string) error
}

// ActivityLogger records audit events for sync decisions.
type ActivityLogger interface {
	Log(ctx context.Context, log models.ActivityLog) error
}

// SyncJob is the payload handed to the worker queue for an accepted sync.
type SyncJob struct {
	SyncID     string          `json:"sync_id"`
	CampaignID string          `json:"campaign_id"`
	UserID     string          `json:"user_id"`
	SyncMode   models.SyncMode `json:"sync_mode"`
	Manual     bool            `json:"manual"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}
