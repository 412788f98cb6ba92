package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadloop/leadloop/internal/models"
)

// ActivityLogRepository handles activity log storage and retrieval.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Log stores a new activity log entry.
func (r *ActivityLogRepository) Log(ctx context.Context, log models.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	var detailsJSON []byte
	var err error
	if log.Details != nil {
		detailsJSON, err = json.Marshal(log.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal details: %w", err)
		}
	}

	query := `
		INSERT INTO activity_logs (id, timestamp, activity_type, campaign_id, user_id, message, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(ctx, query,
		log.ID,
		log.Timestamp,
		log.ActivityType,
		nullString(log.CampaignID),
		nullString(log.UserID),
		log.Message,
		detailsJSON,
	)

	return err
}

// List retrieves activity logs with optional filtering.
func (r *ActivityLogRepository) List(ctx context.Context, limit int, activityType string, campaignID string) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	query := `
		SELECT id, timestamp, activity_type, campaign_id, user_id, message, details
		FROM activity_logs
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if activityType != "" {
		query += fmt.Sprintf(" AND activity_type = $%d", argPos)
		args = append(args, activityType)
		argPos++
	}

	if campaignID != "" {
		query += fmt.Sprintf(" AND campaign_id = $%d", argPos)
		args = append(args, campaignID)
		argPos++
	}

	query += " ORDER BY timestamp DESC"
	query += fmt.Sprintf(" LIMIT $%d", argPos)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.ActivityLog{}
	for rows.Next() {
		var log models.ActivityLog
		var campaignID, userID sql.NullString
		var detailsJSON []byte

		err := rows.Scan(
			&log.ID,
			&log.Timestamp,
			&log.ActivityType,
			&campaignID,
			&userID,
			&log.Message,
			&detailsJSON,
		)
		if err != nil {
			return nil, err
		}

		log.CampaignID = campaignID.String
		log.UserID = userID.String

		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &log.Details); err != nil {
				return nil, fmt.Errorf("failed to unmarshal details: %w", err)
			}
		}

		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// DeleteOlderThan deletes activity logs older than the specified duration.
func (r *ActivityLogRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	query := `DELETE FROM activity_logs WHERE timestamp < $1`
	cutoff := time.Now().Add(-age)

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
