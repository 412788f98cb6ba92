package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/leadloop/leadloop/internal/database"
	"github.com/leadloop/leadloop/internal/models"
)

// ActivityLogHandler serves activity log reads
type ActivityLogHandler struct {
	logs   *database.ActivityLogRepository
	logger *slog.Logger
}

// NewActivityLogHandler creates a new activity log handler
func NewActivityLogHandler(logs *database.ActivityLogRepository, logger *slog.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs, logger: logger}
}

// ActivityLogsResponse is the GET /api/activity payload
type ActivityLogsResponse struct {
	Logs  []models.ActivityLog `json:"logs"`
	Count int                  `json:"count"`
}

// List handles GET /api/activity
func (h *ActivityLogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	activityType := r.URL.Query().Get("type")
	campaignID := r.URL.Query().Get("campaign_id")

	logs, err := h.logs.List(r.Context(), limit, activityType, campaignID)
	if err != nil {
		h.logger.Error("failed to list activity logs", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ActivityLogsResponse{
		Logs:  logs,
		Count: len(logs),
	})
}
