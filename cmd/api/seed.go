package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/workforce-api/internal/dto"
	"github.com/workforce-api/internal/service"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// seedDemoData наполняет пустое хранилище демонстрационными данными
func seedDemoData(
	ctx context.Context,
	empService service.EmployeeService,
	schedService service.ScheduleService,
	logger *slog.Logger,
) error {
	employees := []dto.CreateEmployeeRequest{
		{FirstName: "Alice", LastName: "Smith", Email: "alice.smith@company.com", Department: "Engineering", Position: "Software Engineer", HourlyRate: strPtr("75.00")},
		{FirstName: "Bob", LastName: "Johnson", Email: "bob.johnson@company.com", Department: "Marketing", Position: "Marketing Manager", HourlyRate: strPtr("65.00")},
		{FirstName: "Carol", LastName: "Williams", Email: "carol.williams@company.com", Department: "Sales", Position: "Sales Representative", HourlyRate: strPtr("50.00")},
		{FirstName: "David", LastName: "Brown", Email: "david.brown@company.com", Department: "Operations", Position: "Operations Manager", HourlyRate: strPtr("70.00")},
		{FirstName: "Emma", LastName: "Davis", Email: "emma.davis@company.com", Department: "HR", Position: "HR Specialist", HourlyRate: strPtr("55.00")},
		{FirstName: "Frank", LastName: "Wilson", Email: "frank.wilson@company.com", Department: "Finance", Position: "Financial Analyst", HourlyRate: strPtr("60.00"), IsActive: boolPtr(false)},
	}

	for i := range employees {
		if _, err := empService.Create(ctx, &employees[i]); err != nil {
			return err
		}
	}

	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	schedules := []dto.CreateScheduleRequest{
		{EmployeeID: 1, Date: today, StartTime: "09:00", EndTime: "17:00", Notes: strPtr("Regular shift"), IsRecurring: boolPtr(true), RecurringPattern: strPtr("weekly")},
		{EmployeeID: 2, Date: today, StartTime: "10:00", EndTime: "18:00", Notes: strPtr("Marketing hours")},
		{EmployeeID: 3, Date: tomorrow, StartTime: "08:00", EndTime: "16:00", Notes: strPtr("Early shift")},
		{EmployeeID: 4, Date: tomorrow, StartTime: "12:00", EndTime: "20:00", Notes: strPtr("Afternoon shift"), IsRecurring: boolPtr(true), RecurringPattern: strPtr("daily")},
	}

	for i := range schedules {
		if _, err := schedService.Create(ctx, &schedules[i]); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded",
		slog.Int("employees", len(employees)),
		slog.Int("schedules", len(schedules)),
	)

	return nil
}
