package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadloop/leadloop/internal/models"
)

// Outcome classifies a sync request decision.
type Outcome string

const (
	OutcomeAccepted             Outcome = "accepted"
	OutcomeRequiresExtension    Outcome = "requires_extension"
	OutcomeConflict             Outcome = "conflict"
	OutcomeRateLimited          Outcome = "rate_limited"
	OutcomeRequiresConfirmation Outcome = "requires_confirmation"
)

// Decision is the synchronous result of a sync request. Exactly the fields
// relevant to the outcome are populated.
type Decision struct {
	Outcome Outcome

	// Accepted
	SyncID string

	// RequiresExtension
	Platforms []string

	// Conflict
	ExistingSyncID string
	ExistingStatus models.SyncStatus

	// RateLimited / RequiresConfirmation
	LastSyncAt      *time.Time
	NextAvailableAt time.Time
	MinutesAgo      int
}

// SyncRequest describes a single-campaign sync attempt.
type SyncRequest struct {
	CampaignID string
	UserID     string
	SyncMode   string
	Manual     bool
	// Confirmed marks a re-issued request inside the chronological
	// confirmation band. Confirmed runs charge quota explicitly.
	Confirmed bool
}

// DecisionObserver receives decision outcomes, typically for metrics.
type DecisionObserver interface {
	ObserveDecision(outcome string)
}

// Coordinator makes the accept/reject decision for sync requests and, on
// accept, creates the queued record and hands the job to the dispatcher.
type Coordinator struct {
	campaigns  CampaignStore
	records    SyncRecordStore
	registry   PlatformRegistry
	dispatcher Dispatcher
	quota      QuotaCharger
	activity   ActivityLogger
	observer   DecisionObserver
	logger     *slog.Logger
	now        func() time.Time
}

// NewCoordinator constructs a coordinator. quota, activity, and observer may
// be nil.
func NewCoordinator(campaigns CampaignStore, records SyncRecordStore, registry PlatformRegistry, dispatcher Dispatcher, quota QuotaCharger, activity ActivityLogger, observer DecisionObserver, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		campaigns:  campaigns,
		records:    records,
		registry:   registry,
		dispatcher: dispatcher,
		quota:      quota,
		activity:   activity,
		observer:   observer,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestSync runs the decision sequence for a single campaign. The decision
// and the queued record are settled synchronously before any job is enqueued,
// so no job ever exists without a corresponding record. Returns
// models.ErrCampaignNotFound when the campaign is missing or owned by another
// user.
func (c *Coordinator) RequestSync(ctx context.Context, req SyncRequest) (*Decision, error) {
	campaign, err := c.campaigns.GetOwned(ctx, req.CampaignID, req.UserID)
	if err != nil {
		return nil, err
	}

	decision, err := c.decide(ctx, campaign, req)
	if err != nil {
		return nil, err
	}

	c.observe(decision.Outcome)
	c.logDecision(ctx, campaign, req, decision)

	return decision, nil
}

func (c *Coordinator) decide(ctx context.Context, campaign *models.Campaign, req SyncRequest) (*Decision, error) {
	// Extension-capability check. Platforms that need the browser extension
	// and have no automated-fetch capability cannot be synced server-side.
	var blocked []string
	for _, platform := range campaign.Platforms {
		if c.registry.RequiresExtension(platform) && !campaign.HasCapability(platform) {
			blocked = append(blocked, platform)
		}
	}
	if len(blocked) > 0 {
		return &Decision{Outcome: OutcomeRequiresExtension, Platforms: blocked}, nil
	}

	// Concurrency check.
	active, err := CheckConcurrency(ctx, c.records, campaign)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return &Decision{
			Outcome:        OutcomeConflict,
			ExistingSyncID: active.SyncID,
			ExistingStatus: active.Status,
		}, nil
	}

	// Cooldown check.
	now := c.now()
	cooldown := EvaluateCooldown(campaign.LastSyncAt, c.registry.AnyChronological(campaign.Platforms), now)

	switch cooldown.Verdict {
	case CooldownBlocked:
		return &Decision{
			Outcome:         OutcomeRateLimited,
			LastSyncAt:      cooldown.LastSyncAt,
			NextAvailableAt: cooldown.NextAvailableAt,
			MinutesAgo:      cooldown.MinutesAgo,
		}, nil

	case CooldownNeedsConfirmation:
		if !req.Confirmed {
			return &Decision{
				Outcome:         OutcomeRequiresConfirmation,
				Platforms:       c.chronologicalPlatforms(campaign),
				LastSyncAt:      cooldown.LastSyncAt,
				MinutesAgo:      cooldown.MinutesAgo,
				NextAvailableAt: cooldown.LastSyncAt.Add(ConfirmationWindow),
			}, nil
		}
		// Confirmed: the user accepted spending quota on a probable no-op.
	}

	return c.accept(ctx, campaign, req, now)
}

// accept acquires the campaign lock, creates the queued record, and enqueues
// the job. The conditional status update is the real lock; the unique index
// on active sync records is the backstop for any path that bypasses it.
func (c *Coordinator) accept(ctx context.Context, campaign *models.Campaign, req SyncRequest, now time.Time) (*Decision, error) {
	locked, err := c.campaigns.TryMarkSyncing(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return &Decision{Outcome: OutcomeConflict, ExistingStatus: models.SyncStatusRunning}, nil
	}

	syncType := models.SyncTypeAutomated
	if req.Manual {
		syncType = models.SyncTypeManual
	}

	record := &models.SyncRecord{
		CampaignID: campaign.ID,
		UserID:     campaign.UserID,
		Platform:   campaign.PrimaryPlatform(),
		SyncType:   syncType,
		SyncMode:   models.NormalizeSyncMode(req.SyncMode),
		Status:     models.SyncStatusQueued,
		StartedAt:  now,
	}

	if err := c.records.Create(ctx, record); err != nil {
		if resetErr := c.campaigns.ResetSyncing(ctx, campaign.ID); resetErr != nil {
			c.logger.Error("failed to release campaign lock after record insert failure",
				"campaign_id", campaign.ID, "error", resetErr)
		}
		if errors.Is(err, models.ErrActiveSyncExists) {
			return &Decision{Outcome: OutcomeConflict, ExistingStatus: models.SyncStatusQueued}, nil
		}
		return nil, err
	}

	if req.Confirmed && c.quota != nil {
		if err := c.quota.ChargeConfirmedSync(ctx, campaign.UserID, campaign.ID, record.ID); err != nil {
			c.logger.Error("failed to charge quota for confirmed sync",
				"campaign_id", campaign.ID, "sync_id", record.ID, "error", err)
		}
	}

	if err := c.campaigns.SetNextScheduledSync(ctx, campaign.ID, now.Add(ConfirmationWindow)); err != nil {
		c.logger.Warn("failed to stamp next scheduled sync", "campaign_id", campaign.ID, "error", err)
	}

	job := SyncJob{
		SyncID:     record.ID,
		CampaignID: campaign.ID,
		UserID:     campaign.UserID,
		SyncMode:   record.SyncMode,
		Manual:     req.Manual,
		EnqueuedAt: now,
	}

	if err := c.dispatcher.Dispatch(ctx, job); err != nil {
		// The record exists but no worker will ever pick it up. Fail it and
		// release the lock so the campaign is not stuck.
		if finalizeErr := c.records.Finalize(ctx, record.ID, models.SyncStatusFailed, 0, 0, "failed to enqueue sync job", c.now()); finalizeErr != nil {
			c.logger.Error("failed to finalize undispatched sync record",
				"sync_id", record.ID, "error", finalizeErr)
		}
		if resetErr := c.campaigns.ResetSyncing(ctx, campaign.ID); resetErr != nil {
			c.logger.Error("failed to release campaign lock after dispatch failure",
				"campaign_id", campaign.ID, "error", resetErr)
		}
		return nil, fmt.Errorf("failed to dispatch sync job: %w", err)
	}

	return &Decision{Outcome: OutcomeAccepted, SyncID: record.ID}, nil
}

func (c *Coordinator) chronologicalPlatforms(campaign *models.Campaign) []string {
	var names []string
	for _, platform := range campaign.Platforms {
		if c.registry.AnyChronological([]string{platform}) {
			names = append(names, platform)
		}
	}
	return names
}

func (c *Coordinator) observe(outcome Outcome) {
	if c.observer != nil {
		c.observer.ObserveDecision(string(outcome))
	}
}

func (c *Coordinator) logDecision(ctx context.Context, campaign *models.Campaign, req SyncRequest, decision *Decision) {
	c.logger.Info("sync decision",
		"campaign_id", campaign.ID,
		"user_id", campaign.UserID,
		"outcome", decision.Outcome,
		"manual", req.Manual,
	)

	if c.activity == nil {
		return
	}

	activityType := models.ActivityTypeSyncRejected
	message := fmt.Sprintf("sync request rejected: %s", decision.Outcome)
	details := map[string]interface{}{"outcome": string(decision.Outcome)}

	if decision.Outcome == OutcomeAccepted {
		activityType = models.ActivityTypeSyncAccepted
		message = "sync request accepted"
		details["sync_id"] = decision.SyncID
	}

	if err := c.activity.Log(ctx, models.ActivityLog{
		ActivityType: activityType,
		CampaignID:   campaign.ID,
		UserID:       campaign.UserID,
		Message:      message,
		Details:      details,
	}); err != nil {
		c.logger.Warn("failed to write activity log", "campaign_id", campaign.ID, "error", err)
	}
}
