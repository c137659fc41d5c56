package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/repository"
)

// AnalyticsService вычисляет сводные показатели дашборда
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)
}

type analyticsService struct {
	empRepo   repository.EmployeeRepository
	entryRepo repository.TimeEntryRepository
}

// NewAnalyticsService создаёт новый экземпляр сервиса
func NewAnalyticsService(empRepo repository.EmployeeRepository, entryRepo repository.TimeEntryRepository) AnalyticsService {
	return &analyticsService{
		empRepo:   empRepo,
		entryRepo: entryRepo,
	}
}

// Dashboard пересчитывает показатели по всем коллекциям на каждый запрос.
// Чтение чистое: ни одна запись не изменяется.
func (s *analyticsService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	weekStart := now.Add(-7 * 24 * time.Hour)

	presentToday := 0
	completedCount := 0
	hoursSum := 0.0
	overtimeSum := 0.0

	for _, entry := range entries {
		if !entry.ClockIn.Before(todayStart) && entry.ClockIn.Before(todayEnd) {
			presentToday++
		}

		if entry.TotalHours == nil {
			continue
		}
		hours, err := strconv.ParseFloat(*entry.TotalHours, 64)
		if err != nil {
			continue
		}

		// Средние часы считаются только по закрытым записям
		if entry.ClockOut != nil {
			completedCount++
			hoursSum += hours
		}

		// Переработка - часы сверх восьми за последние семь дней
		if !entry.ClockIn.Before(weekStart) {
			overtimeSum += math.Max(0, hours-8)
		}
	}

	avgHours := 0.0
	if completedCount > 0 {
		avgHours = hoursSum / float64(completedCount)
	}

	return &dto.DashboardStats{
		TotalEmployees: len(employees),
		PresentToday:   presentToday,
		AvgHours:       math.Round(avgHours*10) / 10,
		OvertimeHours:  int(math.Round(overtimeSum)),
	}, nil
}
