package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

func setupScheduleService(t *testing.T) (service.ScheduleService, *mockEmployeeRepo) {
	t.Helper()
	schedRepo := newMockScheduleRepo()
	empRepo := newMockEmployeeRepo()
	return service.NewScheduleService(schedRepo, empRepo), empRepo
}

func newScheduleRequest(employeeID int64) *dto.CreateScheduleRequest {
	return &dto.CreateScheduleRequest{
		EmployeeID: employeeID,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
}

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		want      string
	}{
		{"full day", "09:00", "17:00", "8.0"},
		{"half hour", "09:00", "09:30", "0.5"},
		{"same time", "09:00", "09:00", "0.0"},
		{"uneven minutes", "08:15", "16:30", "8.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.CalculateHours(tt.startTime, tt.endTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateHours_EndBeforeStart(t *testing.T) {
	_, err := service.CalculateHours("17:00", "09:00")
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestCalculateHours_InvalidFormat(t *testing.T) {
	_, err := service.CalculateHours("9am", "17:00")
	assert.Error(t, err)
}

func TestScheduleCreate_Defaults(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	sched, err := svc.Create(context.Background(), newScheduleRequest(emp.ID))
	require.NoError(t, err)

	assert.False(t, sched.IsRecurring)
	assert.Nil(t, sched.RecurringPattern)
	assert.Nil(t, sched.Notes)
}

func TestScheduleCreate_UnknownEmployee(t *testing.T) {
	svc, _ := setupScheduleService(t)

	_, err := svc.Create(context.Background(), newScheduleRequest(42))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestScheduleCreate_RejectsEndBeforeStart(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	req := newScheduleRequest(emp.ID)
	req.StartTime = "17:00"
	req.EndTime = "09:00"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestScheduleCreate_RecurringRequiresPattern(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	recurring := true
	req := newScheduleRequest(emp.ID)
	req.IsRecurring = &recurring

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrRecurringPatternRequired)
}

func TestScheduleCreate_PatternWithoutRecurringRejected(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	pattern := domain.RecurringWeekly
	req := newScheduleRequest(emp.ID)
	req.RecurringPattern = &pattern

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrRecurringPatternNotAllowed)
}

func TestScheduleUpdate_PartialMerge(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	sched, err := svc.Create(context.Background(), newScheduleRequest(emp.ID))
	require.NoError(t, err)

	endTime := "18:00"
	updated, err := svc.Update(context.Background(), sched.ID, &dto.UpdateScheduleRequest{EndTime: &endTime})
	require.NoError(t, err)

	assert.Equal(t, "18:00", updated.EndTime)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, emp.ID, updated.EmployeeID)
}

func TestScheduleUpdate_RecurringToOneOffClearsPattern(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	recurring := true
	pattern := domain.RecurringWeekly
	req := newScheduleRequest(emp.ID)
	req.IsRecurring = &recurring
	req.RecurringPattern = &pattern

	sched, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	off := false
	updated, err := svc.Update(context.Background(), sched.ID, &dto.UpdateScheduleRequest{IsRecurring: &off})
	require.NoError(t, err)

	assert.False(t, updated.IsRecurring)
	assert.Nil(t, updated.RecurringPattern)
	assert.Equal(t, sched.ID, updated.ID)
}

func TestScheduleUpdate_PatternSurvivesUnrelatedUpdate(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	recurring := true
	pattern := domain.RecurringDaily
	req := newScheduleRequest(emp.ID)
	req.IsRecurring = &recurring
	req.RecurringPattern = &pattern

	sched, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	endTime := "18:00"
	updated, err := svc.Update(context.Background(), sched.ID, &dto.UpdateScheduleRequest{EndTime: &endTime})
	require.NoError(t, err)

	assert.True(t, updated.IsRecurring)
	require.NotNil(t, updated.RecurringPattern)
	assert.Equal(t, domain.RecurringDaily, *updated.RecurringPattern)
}

func TestScheduleUpdate_RejectsInvalidInterval(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	sched, err := svc.Create(context.Background(), newScheduleRequest(emp.ID))
	require.NoError(t, err)

	// Новый конец смены раньше существующего начала
	endTime := "08:00"
	_, err = svc.Update(context.Background(), sched.ID, &dto.UpdateScheduleRequest{EndTime: &endTime})
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestScheduleUpdate_NotFound(t *testing.T) {
	svc, _ := setupScheduleService(t)

	_, err := svc.Update(context.Background(), 99, &dto.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestScheduleDelete(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	sched, err := svc.Create(context.Background(), newScheduleRequest(emp.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), sched.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), sched.ID), domain.ErrScheduleNotFound)
}

func TestScheduleGetByDate(t *testing.T) {
	svc, empRepo := setupScheduleService(t)
	emp := createTestEmployee(t, empRepo)

	req := newScheduleRequest(emp.ID)
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	other := newScheduleRequest(emp.ID)
	other.Date = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	// Совпадение только по календарному дню
	schedules, err := svc.GetByDate(context.Background(), time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, schedules, 1)
}
