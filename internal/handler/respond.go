package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
)

// newValidator создаёт валидатор, использующий имена полей из json-тегов
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, dto.ErrorResponse{Message: message})
}

// respondValidationError превращает ошибки валидатора в ответ 400
// со списком ошибок по полям
func respondValidationError(logger *slog.Logger, w http.ResponseWriter, message string, err error) {
	resp := dto.ErrorResponse{Message: message}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, dto.FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
	}

	respondJSON(logger, w, http.StatusBadRequest, resp)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a time in HH:MM format"
	case "numeric":
		return "must be a decimal number"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// handleServiceError отображает бизнес-ошибки на HTTP статусы
func handleServiceError(logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrTimeEntryNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrAttendanceRecordNotFound):
		respondError(logger, w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrActiveTimeEntryExists):
		respondError(logger, w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrClockOutBeforeClockIn),
		errors.Is(err, domain.ErrEndBeforeStart),
		errors.Is(err, domain.ErrRecurringPatternRequired),
		errors.Is(err, domain.ErrRecurringPatternNotAllowed):
		respondError(logger, w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(logger, w, http.StatusInternalServerError, "internal server error")
	}
}
