package models

import (
	"errors"
	"time"
)

var (
	// ErrActiveSyncExists is returned when creating a sync record would
	// violate the one-active-run-per-campaign invariant.
	ErrActiveSyncExists = errors.New("an active sync already exists for this campaign")

	// ErrInvalidTransition is returned when a status update does not match
	// the queued -> running -> completed/failed state machine.
	ErrInvalidTransition = errors.New("invalid sync status transition")

	// ErrSyncRecordNotFound is returned when a sync record does not exist or
	// is not owned by the requesting user.
	ErrSyncRecordNotFound = errors.New("sync record not found")
)

// SyncType distinguishes user-initiated runs from scheduler-initiated ones.
type SyncType string

const (
	SyncTypeManual    SyncType = "manual"
	SyncTypeAutomated SyncType = "automated"
)

// SyncMode selects the collection strategy for a run.
type SyncMode string

const (
	SyncModeFast        SyncMode = "fast"
	SyncModeIntelligent SyncMode = "intelligent"
)

// NormalizeSyncMode maps arbitrary caller input onto a valid mode. Unknown
// values fall back to fast rather than being rejected.
func NormalizeSyncMode(raw string) SyncMode {
	switch SyncMode(raw) {
	case SyncModeFast, SyncModeIntelligent:
		return SyncMode(raw)
	default:
		return SyncModeFast
	}
}

// SyncStatus is the state-machine status of a sync record.
type SyncStatus string

const (
	SyncStatusQueued    SyncStatus = "queued"
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// IsActive reports whether the status counts against the
// one-active-run-per-campaign invariant.
func (s SyncStatus) IsActive() bool {
	return s == SyncStatusQueued || s == SyncStatusRunning
}

// IsTerminal reports whether the status permits no further transitions.
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusFailed
}

// CanTransition reports whether moving from one status to another is allowed.
// Queued records are created by the coordinator; all other transitions belong
// to the worker. Terminal states are final: a retry is a new record.
func CanTransition(from, to SyncStatus) bool {
	switch from {
	case SyncStatusQueued:
		return to == SyncStatusRunning
	case SyncStatusRunning:
		return to == SyncStatusCompleted || to == SyncStatusFailed
	default:
		return false
	}
}

// SyncRecord is the audited trail of a single campaign collection run.
type SyncRecord struct {
	ID             string                 `json:"id"`
	CampaignID     string                 `json:"campaign_id"`
	UserID         string                 `json:"user_id"`
	Platform       string                 `json:"platform"`
	SyncType       SyncType               `json:"sync_type"`
	SyncMode       SyncMode               `json:"sync_mode"`
	Status         SyncStatus             `json:"status"`
	StartedAt      time.Time              `json:"started_at"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	LeadsFound     int                    `json:"leads_found"`
	ResultsCreated int                    `json:"results_created"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ReapedSync identifies a stale run that was force-failed by the reaper.
type ReapedSync struct {
	ID         string
	CampaignID string
}
