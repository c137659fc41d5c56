package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

// ScheduleHandler обрабатывает запросы к /api/schedules
type ScheduleHandler struct {
	schedService  service.ScheduleService
	exportService service.ExportService
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewScheduleHandler создаёт новый обработчик
func NewScheduleHandler(
	schedService service.ScheduleService,
	exportService service.ExportService,
	logger *slog.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		schedService:  schedService,
		exportService: exportService,
		validator:     newValidator(),
		logger:        logger,
	}
}

// List возвращает все смены либо выборку по employeeId или date
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if employeeIDStr := r.URL.Query().Get("employeeId"); employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid employeeId")
			return
		}
		schedules, err := h.schedService.GetByEmployee(r.Context(), employeeID)
		if err != nil {
			handleServiceError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, schedules)
		return
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := parseDateParam(dateStr)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid date")
			return
		}
		schedules, err := h.schedService.GetByDate(r.Context(), date)
		if err != nil {
			handleServiceError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, schedules)
		return
	}

	schedules, err := h.schedService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, schedules)
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid schedule data", err)
		return
	}

	schedule, err := h.schedService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, schedule)
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid schedule id")
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid schedule data", err)
		return
	}

	schedule, err := h.schedService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, schedule)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid schedule id")
		return
	}

	if err := h.schedService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, dto.MessageResponse{Message: "Schedule deleted successfully"})
}

// Export выгружает смены за диапазон дат в табличный документ
func (h *ScheduleHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportSchedulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid export range", err)
		return
	}

	resp, err := h.exportService.ExportSchedules(r.Context(), req.StartDate, req.EndDate)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, resp)
}

// parseDateParam принимает дату как "2006-01-02" или RFC3339
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
