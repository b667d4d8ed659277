package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"trendx-service/internal/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type DashboardHandler struct {
	svc    DashboardService
	logger *slog.Logger
}

func NewDashboardHandler(svc DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: httpLogger(logger)}
}

type dashboardResponse struct {
	Success bool `json:"success"`
	models.DashboardStats
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.logger, "dashboard_stats", err, "", "failed to get dashboard stats")
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{Success: true, DashboardStats: stats})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, envelope{"status": "ok"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
