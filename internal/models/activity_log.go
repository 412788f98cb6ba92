package models

import "time"

// ActivityType represents the type of activity being logged.
type ActivityType string

const (
	ActivityTypeSyncAccepted ActivityType = "sync_accepted"
	ActivityTypeSyncRejected ActivityType = "sync_rejected"
	ActivityTypeSyncCompleted ActivityType = "sync_completed"
	ActivityTypeSyncFailed   ActivityType = "sync_failed"
	ActivityTypeSyncReaped   ActivityType = "sync_reaped"
	ActivityTypeBulkSync     ActivityType = "bulk_sync"
	ActivityTypeQuotaCharge  ActivityType = "quota_charge"
)

// ActivityLog represents a logged scheduling decision or run outcome.
type ActivityLog struct {
	ID           string                 `json:"id"`
	Timestamp    time.Time              `json:"timestamp"`
	ActivityType ActivityType           `json:"activity_type"`
	CampaignID   string                 `json:"campaign_id,omitempty"`
	UserID       string                 `json:"user_id,omitempty"`
	Message      string                 `json:"message"`
	Details      map[string]interface{} `json:"details,omitempty"`
}
