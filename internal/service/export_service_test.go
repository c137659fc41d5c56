package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-api/internal/domain"
	"github.com/workforce-api/internal/service"
	"github.com/workforce-api/internal/sheets"
)

type fakeExporter struct {
	lastDoc sheets.Document
}

func (f *fakeExporter) Export(_ context.Context, doc sheets.Document) (string, error) {
	f.lastDoc = doc
	return "https://docs.google.com/spreadsheets/d/fake/edit", nil
}

func TestExportEmployees(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	schedRepo := newMockScheduleRepo()
	exporter := &fakeExporter{}
	svc := service.NewExportService(empRepo, schedRepo, exporter)

	rate := "75.00"
	require.NoError(t, empRepo.Create(context.Background(), &domain.Employee{
		FirstName: "Alice", LastName: "Smith", Email: "alice@company.com",
		Department: "Engineering", Position: "Engineer", HourlyRate: &rate, IsActive: true,
	}))
	require.NoError(t, empRepo.Create(context.Background(), &domain.Employee{
		FirstName: "Frank", LastName: "Wilson", Email: "frank@company.com",
		Department: "Finance", Position: "Analyst", IsActive: false,
	}))

	resp, err := svc.ExportEmployees(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.RecordCount)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/fake/edit", resp.SpreadsheetURL)
	assert.Equal(t, "Employee Directory", exporter.lastDoc.Title)
	require.Len(t, exporter.lastDoc.Rows, 2)

	first := exporter.lastDoc.Rows[0]
	assert.Equal(t, "Alice Smith", first[3])
	assert.Equal(t, "$75.00", first[7])
	assert.Equal(t, "Active", first[8])

	second := exporter.lastDoc.Rows[1]
	assert.Equal(t, "N/A", second[7])
	assert.Equal(t, "Inactive", second[8])
}

func TestExportSchedules_FiltersRangeAndComputesHours(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	schedRepo := newMockScheduleRepo()
	exporter := &fakeExporter{}
	svc := service.NewExportService(empRepo, schedRepo, exporter)

	emp := &domain.Employee{FirstName: "Alice", LastName: "Smith", Email: "alice@company.com", Department: "Engineering", IsActive: true}
	require.NoError(t, empRepo.Create(context.Background(), emp))

	inRange := &domain.Schedule{
		EmployeeID: emp.ID,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
	outOfRange := &domain.Schedule{
		EmployeeID: emp.ID,
		Date:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "18:00",
	}
	require.NoError(t, schedRepo.Create(context.Background(), inRange))
	require.NoError(t, schedRepo.Create(context.Background(), outOfRange))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ExportSchedules(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.RecordCount)
	require.Len(t, exporter.lastDoc.Rows, 1)

	row := exporter.lastDoc.Rows[0]
	assert.Equal(t, "2025-03-10", row[0])
	assert.Equal(t, "Alice Smith", row[1])
	assert.Equal(t, "Engineering", row[2])
	assert.Equal(t, "8.0", row[5])
	assert.Equal(t, "No", row[7])
}

func TestExportSchedules_UnknownEmployee(t *testing.T) {
	empRepo := newMockEmployeeRepo()
	schedRepo := newMockScheduleRepo()
	exporter := &fakeExporter{}
	svc := service.NewExportService(empRepo, schedRepo, exporter)

	sched := &domain.Schedule{
		EmployeeID: 42,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
	require.NoError(t, schedRepo.Create(context.Background(), sched))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	_, err := svc.ExportSchedules(context.Background(), start, end)
	require.NoError(t, err)

	row := exporter.lastDoc.Rows[0]
	assert.Equal(t, "Unknown", row[1])
	assert.Equal(t, "N/A", row[2])
}
