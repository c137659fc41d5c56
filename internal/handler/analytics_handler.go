package handler

import (
	"log/slog"
	"net/http"

	"github.com/workforce-api/internal/service"
)

// AnalyticsHandler обрабатывает запросы к /api/analytics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *slog.Logger
}

// NewAnalyticsHandler создаёт новый обработчик
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Dashboard возвращает сводные показатели, пересчитанные на момент запроса
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, stats)
}
