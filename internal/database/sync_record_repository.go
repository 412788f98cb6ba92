package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/leadloop/leadloop/internal/models"
)

// SyncRecordRepository handles sync record storage and lifecycle transitions.
type SyncRecordRepository struct {
	db *sql.DB
}

// NewSyncRecordRepository creates a new sync record repository.
func NewSyncRecordRepository(db *sql.DB) *SyncRecordRepository {
	return &SyncRecordRepository{db: db}
}

const syncRecordColumns = `id, campaign_id, user_id, platform, sync_type, sync_mode, status,
	started_at, completed_at, leads_found, results_created, error_message, metadata, created_at`

// Create inserts a new queued sync record. The partial unique index on
// sync_records enforces at most one active record per campaign; a violation
// surfaces as models.ErrActiveSyncExists.
func (r *SyncRecordRepository) Create(ctx context.Context, record *models.SyncRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Status == "" {
		record.Status = models.SyncStatusQueued
	}
	record.CreatedAt = time.Now()

	var metadataJSON []byte
	var err error
	if record.Metadata != nil {
		metadataJSON, err = json.Marshal(record.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
	}

	query := `
		INSERT INTO sync_records (id, campaign_id, user_id, platform, sync_type, sync_mode, status,
			started_at, completed_at, leads_found, results_created, error_message, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.CampaignID,
		record.UserID,
		record.Platform,
		record.SyncType,
		record.SyncMode,
		record.Status,
		record.StartedAt,
		record.CompletedAt,
		record.LeadsFound,
		record.ResultsCreated,
		nullString(record.ErrorMessage),
		metadataJSON,
		record.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.ErrActiveSyncExists
		}
		return fmt.Errorf("failed to insert sync record: %w", err)
	}

	return nil
}

// GetByID retrieves a sync record by ID. Returns nil if not found.
func (r *SyncRecordRepository) GetByID(ctx context.Context, id string) (*models.SyncRecord, error) {
	query := `SELECT ` + syncRecordColumns + ` FROM sync_records WHERE id = $1`

	record, err := scanSyncRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync record: %w", err)
	}

	return record, nil
}

// GetOwned retrieves a sync record scoped to the owning user. Returns
// models.ErrSyncRecordNotFound for both missing and foreign records.
func (r *SyncRecordRepository) GetOwned(ctx context.Context, id, userID string) (*models.SyncRecord, error) {
	query := `SELECT ` + syncRecordColumns + ` FROM sync_records WHERE id = $1 AND user_id = $2`

	record, err := scanSyncRecord(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, models.ErrSyncRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync record: %w", err)
	}

	return record, nil
}

// GetActiveByCampaign returns the campaign's queued or running record, or nil
// when the campaign has no sync in flight.
func (r *SyncRecordRepository) GetActiveByCampaign(ctx context.Context, campaignID string) (*models.SyncRecord, error) {
	query := `SELECT ` + syncRecordColumns + ` FROM sync_records
		WHERE campaign_id = $1 AND status IN ('queued', 'running')
		ORDER BY created_at DESC
		LIMIT 1`

	record, err := scanSyncRecord(r.db.QueryRowContext(ctx, query, campaignID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active sync record: %w", err)
	}

	return record, nil
}

// ListByCampaign returns the campaign's sync history newest first, plus the
// total row count for pagination.
func (r *SyncRecordRepository) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*models.SyncRecord, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM sync_records WHERE campaign_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, campaignID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sync records: %w", err)
	}

	query := `SELECT ` + syncRecordColumns + ` FROM sync_records
		WHERE campaign_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, campaignID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sync records: %w", err)
	}
	defer rows.Close()

	records := []*models.SyncRecord{}
	for rows.Next() {
		record, err := scanSyncRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sync record: %w", err)
		}
		records = append(records, record)
	}

	return records, total, rows.Err()
}

// MarkRunning transitions a queued record to running and stamps started_at.
// Returns models.ErrInvalidTransition if the record is not queued, which keeps
// duplicate job deliveries harmless.
func (r *SyncRecordRepository) MarkRunning(ctx context.Context, id string, startedAt time.Time) error {
	query := `
		UPDATE sync_records
		SET status = 'running', started_at = $2
		WHERE id = $1 AND status = 'queued'
	`

	result, err := r.db.ExecContext(ctx, query, id, startedAt)
	if err != nil {
		return fmt.Errorf("failed to mark sync record running: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrInvalidTransition
	}

	return nil
}

// Finalize transitions an active record to a terminal status with its run
// results. Terminal records are immutable: finalizing twice returns
// models.ErrInvalidTransition.
func (r *SyncRecordRepository) Finalize(ctx context.Context, id string, status models.SyncStatus, leadsFound, resultsCreated int, errorMessage string, completedAt time.Time) error {
	if status != models.SyncStatusCompleted && status != models.SyncStatusFailed {
		return models.ErrInvalidTransition
	}

	query := `
		UPDATE sync_records
		SET status = $2, leads_found = $3, results_created = $4, error_message = $5, completed_at = $6
		WHERE id = $1 AND status IN ('queued', 'running')
	`

	result, err := r.db.ExecContext(ctx, query, id, status, leadsFound, resultsCreated, nullString(errorMessage), completedAt)
	if err != nil {
		return fmt.Errorf("failed to finalize sync record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrInvalidTransition
	}

	return nil
}

// ReapStale force-fails running records whose started_at is older than the
// timeout and returns them so callers can release the campaign locks.
func (r *SyncRecordRepository) ReapStale(ctx context.Context, timeout time.Duration) ([]models.ReapedSync, error) {
	query := `
		UPDATE sync_records
		SET status = 'failed',
			error_message = 'sync timed out and was reaped',
			completed_at = NOW()
		WHERE status = 'running' AND started_at < NOW() - $1::interval
		RETURNING id, campaign_id
	`

	interval := fmt.Sprintf("%d seconds", int(timeout.Seconds()))
	rows, err := r.db.QueryContext(ctx, query, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to reap stale sync records: %w", err)
	}
	defer rows.Close()

	reaped := []models.ReapedSync{}
	for rows.Next() {
		var rec models.ReapedSync
		if err := rows.Scan(&rec.ID, &rec.CampaignID); err != nil {
			return nil, fmt.Errorf("failed to scan reaped record: %w", err)
		}
		reaped = append(reaped, rec)
	}

	return reaped, rows.Err()
}

func scanSyncRecord(row rowScanner) (*models.SyncRecord, error) {
	var record models.SyncRecord
	var startedAt, completedAt sql.NullTime
	var errorMessage sql.NullString
	var metadataJSON []byte

	err := row.Scan(
		&record.ID,
		&record.CampaignID,
		&record.UserID,
		&record.Platform,
		&record.SyncType,
		&record.SyncMode,
		&record.Status,
		&startedAt,
		&completedAt,
		&record.LeadsFound,
		&record.ResultsCreated,
		&errorMessage,
		&metadataJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startedAt.Valid {
		record.StartedAt = startedAt.Time
	}
	if completedAt.Valid {
		record.CompletedAt = &completedAt.Time
	}
	record.ErrorMessage = errorMessage.String

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &record, nil
}
