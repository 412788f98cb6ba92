package api

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/leadloop/leadloop/internal/auth"
	"github.com/leadloop/leadloop/internal/database"
	"github.com/leadloop/leadloop/internal/models"
)

// CampaignHandler serves campaign reads
type CampaignHandler struct {
	campaigns *database.CampaignRepository
	logger    *slog.Logger
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaigns *database.CampaignRepository, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, logger: logger}
}

// CampaignsResponse is the GET /api/campaigns payload
type CampaignsResponse struct {
	Campaigns []*models.Campaign `json:"campaigns"`
	Count     int                `json:"count"`
}

// List handles GET /api/campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	campaigns, err := h.campaigns.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list campaigns", "user_id", userID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, CampaignsResponse{
		Campaigns: campaigns,
		Count:     len(campaigns),
	})
}

// Get handles GET /api/campaigns/{id}
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	if campaignID == "" {
		http.Error(w, "Campaign ID required", http.StatusBadRequest)
		return
	}

	campaign, err := h.campaigns.GetOwned(r.Context(), campaignID, userID)
	if err != nil {
		if errors.Is(err, models.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get campaign", "campaign_id", campaignID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, campaign)
}
