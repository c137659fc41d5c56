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

// AttendanceHandler обрабатывает запросы к /api/attendance
type AttendanceHandler struct {
	attService service.AttendanceService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAttendanceHandler создаёт новый обработчик
func NewAttendanceHandler(attService service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attService: attService,
		validator:  newValidator(),
		logger:     logger,
	}
}

// List возвращает все отметки либо выборку по employeeId
// или по диапазону startDate/endDate
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if employeeIDStr := r.URL.Query().Get("employeeId"); employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid employeeId")
			return
		}
		records, err := h.attService.GetByEmployee(r.Context(), employeeID)
		if err != nil {
			handleServiceError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, records)
		return
	}

	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr != "" && endStr != "" {
		start, err := parseDateParam(startStr)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid startDate")
			return
		}
		end, err := parseDateParam(endStr)
		if err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "invalid endDate")
			return
		}
		records, err := h.attService.GetByDateRange(r.Context(), start, end)
		if err != nil {
			handleServiceError(h.logger, w, err)
			return
		}
		respondJSON(h.logger, w, http.StatusOK, records)
		return
	}

	records, err := h.attService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, records)
}

func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid attendance data", err)
		return
	}

	record, err := h.attService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, record)
}
