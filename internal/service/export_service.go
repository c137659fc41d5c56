package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
	"github.com/workforce-api/internal/sheets"
)

const dateLayout = "2006-01-02"

// ExportService выгружает данные в табличный документ через адаптер sheets
type ExportService interface {
	ExportEmployees(ctx context.Context) (*dto.ExportResponse, error)
	ExportSchedules(ctx context.Context, start, end time.Time) (*dto.ExportResponse, error)
}

type exportService struct {
	empRepo   repository.EmployeeRepository
	schedRepo repository.ScheduleRepository
	exporter  sheets.Exporter
}

// NewExportService создаёт новый экземпляр сервиса
func NewExportService(
	empRepo repository.EmployeeRepository,
	schedRepo repository.ScheduleRepository,
	exporter sheets.Exporter,
) ExportService {
	return &exportService{
		empRepo:   empRepo,
		schedRepo: schedRepo,
		exporter:  exporter,
	}
}

func (s *exportService) ExportEmployees(ctx context.Context) (*dto.ExportResponse, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	doc := sheets.Document{
		Title: "Employee Directory",
		Headers: []string{
			"Employee ID", "First Name", "Last Name", "Full Name", "Email",
			"Department", "Position", "Hourly Rate", "Status", "Created Date", "Created Time",
		},
	}

	for _, emp := range employees {
		rate := "N/A"
		if emp.HourlyRate != nil {
			rate = "$" + *emp.HourlyRate
		}
		status := "Inactive"
		if emp.IsActive {
			status = "Active"
		}
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("%d", emp.ID),
			emp.FirstName,
			emp.LastName,
			emp.FullName(),
			emp.Email,
			emp.Department,
			emp.Position,
			rate,
			status,
			emp.CreatedAt.Format(dateLayout),
			emp.CreatedAt.Format("15:04:05"),
		})
	}

	url, err := s.exporter.Export(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &dto.ExportResponse{
		Message:        "Employee data exported successfully",
		SpreadsheetURL: url,
		RecordCount:    len(employees),
	}, nil
}

func (s *exportService) ExportSchedules(ctx context.Context, start, end time.Time) (*dto.ExportResponse, error) {
	schedules, err := s.schedRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	rangeLabel := start.Format(dateLayout) + " - " + end.Format(dateLayout)
	doc := sheets.Document{
		Title:      "Work Schedule " + rangeLabel,
		RangeLabel: rangeLabel,
		Headers: []string{
			"Date", "Employee", "Department", "Start Time", "End Time",
			"Total Hours", "Notes", "Recurring",
		},
	}

	for _, sched := range schedules {
		name := "Unknown"
		department := "N/A"
		if emp, ok := byID[sched.EmployeeID]; ok {
			name = emp.FullName()
			department = emp.Department
		}

		// Смены создаются с валидным интервалом, поэтому ошибка здесь
		// возможна только для данных, записанных в обход сервиса
		hours, err := CalculateHours(sched.StartTime, sched.EndTime)
		if err != nil {
			hours = "N/A"
		}

		notes := ""
		if sched.Notes != nil {
			notes = *sched.Notes
		}
		recurring := "No"
		if sched.IsRecurring {
			recurring = "Yes"
		}

		doc.Rows = append(doc.Rows, []string{
			sched.Date.Format(dateLayout),
			name,
			department,
			sched.StartTime,
			sched.EndTime,
			hours,
			notes,
			recurring,
		})
	}

	url, err := s.exporter.Export(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &dto.ExportResponse{
		Message:        "Schedule exported successfully",
		SpreadsheetURL: url,
		RecordCount:    len(schedules),
	}, nil
}
