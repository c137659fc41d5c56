package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FirstName  string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string  `json:"lastName" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email,max=200"`
	Department string  `json:"department" validate:"required,min=1,max=100"`
	Position   string  `json:"position" validate:"required,min=1,max=100"`
	HourlyRate *string `json:"hourlyRate" validate:"omitempty,numeric"`
	IsActive   *bool   `json:"isActive"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника.
// Применяются только непустые поля.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email" validate:"omitempty,email,max=200"`
	Department *string `json:"department" validate:"omitempty,min=1,max=100"`
	Position   *string `json:"position" validate:"omitempty,min=1,max=100"`
	HourlyRate *string `json:"hourlyRate" validate:"omitempty,numeric"`
	IsActive   *bool   `json:"isActive"`
}

// CreateTimeEntryRequest - запрос на открытие записи рабочего времени.
// ClockIn по умолчанию - текущий момент; TotalHours при создании
// всегда пустой, независимо от входных данных.
type CreateTimeEntryRequest struct {
	EmployeeID    int64      `json:"employeeId" validate:"required,min=1"`
	ClockIn       *time.Time `json:"clockIn"`
	ClockOut      *time.Time `json:"clockOut"`
	BreakDuration *int       `json:"breakDuration" validate:"omitempty,min=0"`
	Status        *string    `json:"status" validate:"omitempty,oneof=active completed pending"`
	Notes         *string    `json:"notes"`
}

// ClockOutRequest - запрос на закрытие записи рабочего времени
type ClockOutRequest struct {
	ClockOut time.Time `json:"clockOut" validate:"required"`
}

// CreateScheduleRequest - запрос на создание запланированной смены
type CreateScheduleRequest struct {
	EmployeeID       int64     `json:"employeeId" validate:"required,min=1"`
	Date             time.Time `json:"date" validate:"required"`
	StartTime        string    `json:"startTime" validate:"required,datetime=15:04"`
	EndTime          string    `json:"endTime" validate:"required,datetime=15:04"`
	IsRecurring      *bool     `json:"isRecurring"`
	RecurringPattern *string   `json:"recurringPattern" validate:"omitempty,oneof=daily weekly monthly"`
	Notes            *string   `json:"notes"`
}

// UpdateScheduleRequest - частичное обновление смены
type UpdateScheduleRequest struct {
	EmployeeID       *int64     `json:"employeeId" validate:"omitempty,min=1"`
	Date             *time.Time `json:"date"`
	StartTime        *string    `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime          *string    `json:"endTime" validate:"omitempty,datetime=15:04"`
	IsRecurring      *bool      `json:"isRecurring"`
	RecurringPattern *string    `json:"recurringPattern" validate:"omitempty,oneof=daily weekly monthly"`
	Notes            *string    `json:"notes"`
}

// CreateAttendanceRequest - запрос на создание отметки посещаемости
type CreateAttendanceRequest struct {
	EmployeeID     int64     `json:"employeeId" validate:"required,min=1"`
	Date           time.Time `json:"date" validate:"required"`
	Status         string    `json:"status" validate:"required,oneof=present absent late early_leave"`
	ScheduledHours *string   `json:"scheduledHours" validate:"omitempty,numeric"`
	ActualHours    *string   `json:"actualHours" validate:"omitempty,numeric"`
	Notes          *string   `json:"notes"`
}

// ExportSchedulesRequest - диапазон дат для экспорта расписания
type ExportSchedulesRequest struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

// DashboardStats - сводные показатели для дашборда
type DashboardStats struct {
	TotalEmployees int     `json:"totalEmployees"`
	PresentToday   int     `json:"presentToday"`
	AvgHours       float64 `json:"avgHours"`
	OvertimeHours  int     `json:"overtimeHours"`
}

// ExportResponse - результат экспорта в таблицу
type ExportResponse struct {
	Message        string `json:"message"`
	SpreadsheetURL string `json:"spreadsheetUrl"`
	RecordCount    int    `json:"recordCount"`
}

// FieldError - ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponse - ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
