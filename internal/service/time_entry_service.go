package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// TimeEntryService определяет интерфейс бизнес-логики для записей рабочего времени
type TimeEntryService interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeEntry, error)
	GetActive(ctx context.Context, employeeID int64) (*domain.TimeEntry, error)
	Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*domain.TimeEntry, error)
	ClockOut(ctx context.Context, id int64, clockOut time.Time) (*domain.TimeEntry, error)
}

type timeEntryService struct {
	entryRepo repository.TimeEntryRepository
	empRepo   repository.EmployeeRepository
}

// NewTimeEntryService создаёт новый экземпляр сервиса
func NewTimeEntryService(entryRepo repository.TimeEntryRepository, empRepo repository.EmployeeRepository) TimeEntryService {
	return &timeEntryService{
		entryRepo: entryRepo,
		empRepo:   empRepo,
	}
}

func (s *timeEntryService) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return s.entryRepo.List(ctx)
}

func (s *timeEntryService) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeEntry, error) {
	return s.entryRepo.GetByEmployee(ctx, employeeID)
}

func (s *timeEntryService) GetActive(ctx context.Context, employeeID int64) (*domain.TimeEntry, error) {
	return s.entryRepo.GetActiveByEmployee(ctx, employeeID)
}

func (s *timeEntryService) Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	status := domain.TimeEntryStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	// У сотрудника может быть не больше одной открытой записи
	if status == domain.TimeEntryStatusActive {
		active, err := s.entryRepo.GetActiveByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if active != nil {
			return nil, domain.ErrActiveTimeEntryExists
		}
	}

	clockIn := time.Now()
	if req.ClockIn != nil {
		clockIn = *req.ClockIn
	}

	entry := &domain.TimeEntry{
		EmployeeID: req.EmployeeID,
		ClockIn:    clockIn,
		ClockOut:   req.ClockOut,
		Status:     status,
		Notes:      req.Notes,
		// TotalHours при создании всегда пустой
		TotalHours: nil,
	}
	if req.BreakDuration != nil {
		entry.BreakDuration = *req.BreakDuration
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ClockOut закрывает запись: вычисляет отработанные часы за вычетом
// перерыва и переводит статус в completed. Время закрытия раньше
// времени открытия отклоняется.
func (s *timeEntryService) ClockOut(ctx context.Context, id int64, clockOut time.Time) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if clockOut.Before(entry.ClockIn) {
		return nil, domain.ErrClockOutBeforeClockIn
	}

	total := ComputeTotalHours(entry.ClockIn, clockOut, entry.BreakDuration)

	entry.ClockOut = &clockOut
	entry.TotalHours = &total
	entry.Status = domain.TimeEntryStatusCompleted

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ComputeTotalHours возвращает отработанные часы между clockIn и clockOut
// за вычетом перерыва (в минутах), отформатированные с двумя знаками.
// Результат не бывает отрицательным, даже если перерыв длиннее смены.
func ComputeTotalHours(clockIn, clockOut time.Time, breakMinutes int) string {
	hoursWorked := clockOut.Sub(clockIn).Hours()
	total := hoursWorked - float64(breakMinutes)/60
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%.2f", total)
}
