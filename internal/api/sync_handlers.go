package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/leadloop/leadloop/internal/auth"
	"github.com/leadloop/leadloop/internal/models"
	"github.com/leadloop/leadloop/internal/scheduler"
)

// SyncRecordReader is the read surface sync handlers need.
type SyncRecordReader interface {
	GetOwned(ctx context.Context, id, userID string) (*models.SyncRecord, error)
	GetActiveByCampaign(ctx context.Context, campaignID string) (*models.SyncRecord, error)
	ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*models.SyncRecord, int, error)
}

// SyncHandler handles sync scheduling requests
type SyncHandler struct {
	coordinator *scheduler.Coordinator
	bulk        *scheduler.BulkScheduler
	campaigns   scheduler.CampaignStore
	records     SyncRecordReader
	logger      *slog.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(coordinator *scheduler.Coordinator, bulk *scheduler.BulkScheduler, campaigns scheduler.CampaignStore, records SyncRecordReader, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		coordinator: coordinator,
		bulk:        bulk,
		campaigns:   campaigns,
		records:     records,
		logger:      logger,
	}
}

// SyncRequestBody is the POST /api/campaigns/{id}/sync payload
type SyncRequestBody struct {
	SyncMode  string `json:"sync_mode"`
	Confirmed bool   `json:"confirmed"`
}

// RequestSync handles POST /api/campaigns/{id}/sync
func (h *SyncHandler) RequestSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := pathSegment(r.URL.Path, 3)
	if campaignID == "" {
		http.Error(w, "Campaign ID required", http.StatusBadRequest)
		return
	}

	var body SyncRequestBody
	if r.Body != nil {
		// An empty or absent body means default sync mode, unconfirmed.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	decision, err := h.coordinator.RequestSync(r.Context(), scheduler.SyncRequest{
		CampaignID: campaignID,
		UserID:     userID,
		SyncMode:   body.SyncMode,
		Manual:     true,
		Confirmed:  body.Confirmed,
	})
	if err != nil {
		if errors.Is(err, models.ErrCampaignNotFound) {
			writeJSON(w, h.logger, http.StatusNotFound, map[string]interface{}{
				"error": "campaign not found",
			})
			return
		}
		h.logger.Error("sync request failed", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeDecision(w, decision)
}

func (h *SyncHandler) writeDecision(w http.ResponseWriter, decision *scheduler.Decision) {
	switch decision.Outcome {
	case scheduler.OutcomeAccepted:
		writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
			"status":  "queued",
			"sync_id": decision.SyncID,
		})

	case scheduler.OutcomeRequiresExtension:
		writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
			"requires_extension": true,
			"platforms":          decision.Platforms,
		})

	case scheduler.OutcomeRequiresConfirmation:
		writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
			"requires_confirmation": true,
			"warning":               fmt.Sprintf("campaign synced %d minutes ago; re-syncing now may consume quota for no new results", decision.MinutesAgo),
			"last_sync_at":          decision.LastSyncAt,
			"minutes_ago":           decision.MinutesAgo,
			"platforms":             decision.Platforms,
		})

	case scheduler.OutcomeConflict:
		writeJSON(w, h.logger, http.StatusConflict, map[string]interface{}{
			"error":   "sync already in progress",
			"sync_id": decision.ExistingSyncID,
			"status":  decision.ExistingStatus,
		})

	case scheduler.OutcomeRateLimited:
		writeJSON(w, h.logger, http.StatusTooManyRequests, map[string]interface{}{
			"error":               "rate_limited",
			"last_sync_at":        decision.LastSyncAt,
			"next_available_sync": decision.NextAvailableAt,
		})

	default:
		h.logger.Error("unknown sync decision outcome", "outcome", decision.Outcome)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// SyncAll handles POST /api/campaigns/sync-all
func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body SyncRequestBody
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	result, err := h.bulk.SyncAllEligible(r.Context(), userID, body.SyncMode)
	if err != nil {
		h.logger.Error("bulk sync failed", "user_id", userID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if result.TotalCampaigns == 0 {
		writeJSON(w, h.logger, http.StatusNotFound, map[string]string{
			"error": "No active campaigns",
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// SyncHistoryResponse is the GET /api/campaigns/{id}/sync-history payload
type SyncHistoryResponse struct {
	Records []*models.SyncRecord `json:"records"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// SyncHistory handles GET /api/campaigns/{id}/sync-history
func (h *SyncHandler) SyncHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := pathSegment(r.URL.Path, 3)
	campaign, err := h.campaigns.GetOwned(r.Context(), campaignID, userID)
	if err != nil {
		if errors.Is(err, models.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load campaign", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	records, total, err := h.records.ListByCampaign(r.Context(), campaign.ID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list sync history", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, SyncHistoryResponse{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// RunningSync handles GET /api/campaigns/{id}/running-sync
func (h *SyncHandler) RunningSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaignID := pathSegment(r.URL.Path, 3)
	campaign, err := h.campaigns.GetOwned(r.Context(), campaignID, userID)
	if err != nil {
		if errors.Is(err, models.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load campaign", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	record, err := h.records.GetActiveByCampaign(r.Context(), campaign.ID)
	if err != nil {
		h.logger.Error("failed to get running sync", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The body is the active record itself, or JSON null when nothing is
	// queued or running.
	writeJSON(w, h.logger, http.StatusOK, record)
}

// GetSyncRecord handles GET /api/syncs/{id}
func (h *SyncHandler) GetSyncRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	syncID := pathSegment(r.URL.Path, 3)
	if syncID == "" {
		http.Error(w, "Sync ID required", http.StatusBadRequest)
		return
	}

	record, err := h.records.GetOwned(r.Context(), syncID, userID)
	if err != nil {
		if errors.Is(err, models.ErrSyncRecordNotFound) {
			http.Error(w, "Sync record not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get sync record", "sync_id", syncID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, record)
}

// pathSegment extracts the nth slash-separated segment of the path, e.g.
// segment 3 of /api/campaigns/{id}/sync is the campaign ID.
func pathSegment(path string, n int) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) <= n-1 {
		return ""
	}
	return parts[n-1]
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
