package service

import (
	"context"
	"time"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// AttendanceService определяет интерфейс бизнес-логики для отметок посещаемости
type AttendanceService interface {
	List(ctx context.Context) ([]domain.AttendanceRecord, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error)
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error)
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
	}
}

func (s *attendanceService) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	return s.attRepo.List(ctx)
}

func (s *attendanceService) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	return s.attRepo.GetByEmployee(ctx, employeeID)
}

func (s *attendanceService) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	return s.attRepo.GetByDateRange(ctx, start, end)
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.AttendanceRecord, error) {
	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	record := &domain.AttendanceRecord{
		EmployeeID:     req.EmployeeID,
		Date:           req.Date,
		Status:         req.Status,
		ScheduledHours: req.ScheduledHours,
		ActualHours:    req.ActualHours,
		Notes:          req.Notes,
	}

	if err := s.attRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
