package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// ScheduleService определяет интерфейс бизнес-логики для запланированных смен
type ScheduleService interface {
	List(ctx context.Context) ([]domain.Schedule, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.Schedule, error)
	GetByDate(ctx context.Context, date time.Time) ([]domain.Schedule, error)
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*domain.Schedule, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*domain.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

type scheduleService struct {
	schedRepo repository.ScheduleRepository
	empRepo   repository.EmployeeRepository
}

// NewScheduleService создаёт новый экземпляр сервиса
func NewScheduleService(schedRepo repository.ScheduleRepository, empRepo repository.EmployeeRepository) ScheduleService {
	return &scheduleService{
		schedRepo: schedRepo,
		empRepo:   empRepo,
	}
}

func (s *scheduleService) List(ctx context.Context) ([]domain.Schedule, error) {
	return s.schedRepo.List(ctx)
}

func (s *scheduleService) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.Schedule, error) {
	return s.schedRepo.GetByEmployee(ctx, employeeID)
}

func (s *scheduleService) GetByDate(ctx context.Context, date time.Time) ([]domain.Schedule, error) {
	return s.schedRepo.GetByDate(ctx, date)
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*domain.Schedule, error) {
	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	if _, err := CalculateHours(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	isRecurring := false
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}
	if err := validateRecurring(isRecurring, req.RecurringPattern); err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{
		EmployeeID:       req.EmployeeID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		IsRecurring:      isRecurring,
		RecurringPattern: req.RecurringPattern,
		Notes:            req.Notes,
	}

	if err := s.schedRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *scheduleService) Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*domain.Schedule, error) {
	schedule, err := s.schedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeID != nil {
		if _, err := s.empRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
		schedule.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		schedule.Date = *req.Date
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if _, err := CalculateHours(schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}

	if req.IsRecurring != nil {
		schedule.IsRecurring = *req.IsRecurring
		// Явный перевод смены в разовую сбрасывает сохранённый шаблон
		if !schedule.IsRecurring && req.RecurringPattern == nil {
			schedule.RecurringPattern = nil
		}
	}
	if req.RecurringPattern != nil {
		schedule.RecurringPattern = req.RecurringPattern
	}
	if err := validateRecurring(schedule.IsRecurring, schedule.RecurringPattern); err != nil {
		return nil, err
	}

	if req.Notes != nil {
		schedule.Notes = req.Notes
	}

	if err := s.schedRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id int64) error {
	return s.schedRepo.Delete(ctx, id)
}

// validateRecurring проверяет согласованность флага повторения и шаблона:
// шаблон обязателен для повторяющихся смен и недопустим для разовых
func validateRecurring(isRecurring bool, pattern *string) error {
	if isRecurring && pattern == nil {
		return domain.ErrRecurringPatternRequired
	}
	if !isRecurring && pattern != nil {
		return domain.ErrRecurringPatternNotAllowed
	}
	return nil
}

// CalculateHours возвращает длительность смены между двумя моментами
// "HH:MM" одного дня с одним знаком после запятой. Конец смены раньше
// начала отклоняется; смены через полночь не поддерживаются.
func CalculateHours(startTime, endTime string) (string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return "", fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	if end.Before(start) {
		return "", domain.ErrEndBeforeStart
	}

	return fmt.Sprintf("%.1f", end.Sub(start).Hours()), nil
}
