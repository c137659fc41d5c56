package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

// TimeEntryHandler обрабатывает запросы к /api/time-entries
type TimeEntryHandler struct {
	entryService service.TimeEntryService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewTimeEntryHandler создаёт новый обработчик
func NewTimeEntryHandler(entryService service.TimeEntryService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		entryService: entryService,
		validator:    newValidator(),
		logger:       logger,
	}
}

// List возвращает все записи либо записи одного сотрудника
// при наличии query-параметра employeeId
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	if employeeIDStr := r.URL.Query().Get("employeeId"); employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid employeeId")
			return
		}
		entries, err := h.entryService.GetByEmployee(r.Context(), employeeID)
		if err != nil {
			handleServiceError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, entries)
		return
	}

	entries, err := h.entryService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, entries)
}

// GetActive возвращает открытую запись сотрудника или null, если её нет
func (h *TimeEntryHandler) GetActive(w http.ResponseWriter, r *http.Request, employeeIDStr string) {
	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id")
		return
	}

	entry, err := h.entryService.GetActive(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, entry)
}

func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid time entry data", err)
		return
	}

	entry, err := h.entryService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, entry)
}

// ClockOut закрывает запись рабочего времени
func (h *TimeEntryHandler) ClockOut(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid time entry id")
		return
	}

	var req dto.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid clock-out data", err)
		return
	}

	entry, err := h.entryService.ClockOut(r.Context(), id, req.ClockOut)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, entry)
}
