package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrTimeEntryNotFound          = errors.New("time entry not found")
	ErrScheduleNotFound           = errors.New("schedule not found")
	ErrAttendanceRecordNotFound   = errors.New("attendance record not found")
	ErrDuplicateEmail             = errors.New("employee with this email already exists")
	ErrActiveTimeEntryExists      = errors.New("employee already has an active time entry")
	ErrClockOutBeforeClockIn      = errors.New("clock-out time cannot be before clock-in time")
	ErrEndBeforeStart             = errors.New("end time cannot be before start time")
	ErrRecurringPatternRequired   = errors.New("recurring pattern is required for recurring schedules")
	ErrRecurringPatternNotAllowed = errors.New("recurring pattern must be empty for non-recurring schedules")
)
