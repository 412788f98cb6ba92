package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/leadloop/leadloop/internal/models"
)

// CampaignRepository handles campaign storage and retrieval.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new campaign repository.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, user_id, name, platforms, status, connected_capabilities,
	last_sync_at, next_scheduled_sync_at, created_at, updated_at`

// Create inserts a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusActive
	}

	query := `
		INSERT INTO campaigns (id, user_id, name, platforms, status, connected_capabilities,
			last_sync_at, next_scheduled_sync_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		campaign.ID,
		campaign.UserID,
		campaign.Name,
		pq.Array(campaign.Platforms),
		campaign.Status,
		pq.Array(campaign.ConnectedCapabilities),
		campaign.LastSyncAt,
		campaign.NextScheduledSyncAt,
		campaign.CreatedAt,
		campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by ID. Returns nil if not found.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

// GetOwned retrieves a campaign by ID, scoped to the owning user. It returns
// models.ErrCampaignNotFound both when the campaign does not exist and when
// it belongs to another user, so callers cannot distinguish the two.
func (r *CampaignRepository) GetOwned(ctx context.Context, id, userID string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 AND user_id = $2`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, models.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

// ListByUser retrieves all campaigns owned by the user, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

// ListActiveByUser retrieves the user's campaigns that are candidates for a
// bulk sync pass. Campaigns currently marked syncing are included so the
// per-campaign concurrency check can count them as skips.
func (r *CampaignRepository) ListActiveByUser(ctx context.Context, userID string) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns
		WHERE user_id = $1 AND status IN ('active', 'syncing')
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

// TryMarkSyncing atomically flips the campaign into the syncing state. It
// returns false when the campaign is already syncing, which is how concurrent
// sync attempts lose the race.
func (r *CampaignRepository) TryMarkSyncing(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE campaigns
		SET status = 'syncing', updated_at = NOW()
		WHERE id = $1 AND status <> 'syncing'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark campaign syncing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

// ResetSyncing returns a syncing campaign to active without touching its sync
// timestamps. Used when a run fails, is reaped, or never dispatched.
func (r *CampaignRepository) ResetSyncing(ctx context.Context, id string) error {
	query := `
		UPDATE campaigns
		SET status = 'active', updated_at = NOW()
		WHERE id = $1 AND status = 'syncing'
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to reset syncing campaign: %w", err)
	}

	return nil
}

// CompleteSync records a successful run: clears the syncing flag and stamps
// last_sync_at.
func (r *CampaignRepository) CompleteSync(ctx context.Context, id string, syncedAt time.Time) error {
	query := `
		UPDATE campaigns
		SET status = 'active', last_sync_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'syncing'
	`

	if _, err := r.db.ExecContext(ctx, query, id, syncedAt); err != nil {
		return fmt.Errorf("failed to complete campaign sync: %w", err)
	}

	return nil
}

// SetNextScheduledSync stamps when the automated scheduler should next visit
// the campaign.
func (r *CampaignRepository) SetNextScheduledSync(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE campaigns SET next_scheduled_sync_at = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("failed to set next scheduled sync: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var campaign models.Campaign
	var lastSyncAt, nextScheduledSyncAt sql.NullTime

	err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		pq.Array(&campaign.Platforms),
		&campaign.Status,
		pq.Array(&campaign.ConnectedCapabilities),
		&lastSyncAt,
		&nextScheduledSyncAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSyncAt.Valid {
		campaign.LastSyncAt = &lastSyncAt.Time
	}
	if nextScheduledSyncAt.Valid {
		campaign.NextScheduledSyncAt = &nextScheduledSyncAt.Time
	}

	return &campaign, nil
}

func collectCampaigns(rows *sql.Rows) ([]*models.Campaign, error) {
	campaigns := []*models.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}
