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

// EmployeeHandler обрабатывает запросы к /api/employees
type EmployeeHandler struct {
	empService    service.EmployeeService
	exportService service.ExportService
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewEmployeeHandler создаёт новый обработчик
func NewEmployeeHandler(
	empService service.EmployeeService,
	exportService service.ExportService,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		empService:    empService,
		exportService: exportService,
		validator:     newValidator(),
		logger:        logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id")
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid employee data", err)
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusCreated, emp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(h.logger, w, "Invalid employee data", err)
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, dto.MessageResponse{Message: "Employee deleted successfully"})
}

// Export выгружает справочник сотрудников в табличный документ
func (h *EmployeeHandler) Export(w http.ResponseWriter, r *http.Request) {
	resp, err := h.exportService.ExportEmployees(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}
	respondJSON(h.logger, w, http.StatusOK, resp)
}
