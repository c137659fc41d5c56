package service_test

import (
	"context"
	"time"

	"github.com/workforce-api/internal/domain"
)

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	var result []domain.Employee
	for id := int64(1); id < m.nextID; id++ {
		if emp, ok := m.employees[id]; ok {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		return emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	emp.CreatedAt = time.Now()
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error) {
	for _, emp := range m.employees {
		if emp.Email == email {
			if excludeID == nil || emp.ID != *excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

type mockTimeEntryRepo struct {
	entries map[int64]*domain.TimeEntry
	nextID  int64
}

func newMockTimeEntryRepo() *mockTimeEntryRepo {
	return &mockTimeEntryRepo{
		entries: make(map[int64]*domain.TimeEntry),
		nextID:  1,
	}
}

func (m *mockTimeEntryRepo) List(ctx context.Context) ([]domain.TimeEntry, error) {
	var result []domain.TimeEntry
	for id := int64(1); id < m.nextID; id++ {
		if entry, ok := m.entries[id]; ok {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockTimeEntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, domain.ErrTimeEntryNotFound
}

func (m *mockTimeEntryRepo) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeEntry, error) {
	var result []domain.TimeEntry
	for id := int64(1); id < m.nextID; id++ {
		if entry, ok := m.entries[id]; ok && entry.EmployeeID == employeeID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockTimeEntryRepo) GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.TimeEntry, error) {
	for id := int64(1); id < m.nextID; id++ {
		if entry, ok := m.entries[id]; ok &&
			entry.EmployeeID == employeeID && entry.Status == domain.TimeEntryStatusActive {
			return entry, nil
		}
	}
	return nil, nil
}

func (m *mockTimeEntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) error {
	entry.ID = m.nextID
	entry.CreatedAt = time.Now()
	m.nextID++
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockTimeEntryRepo) Update(ctx context.Context, entry *domain.TimeEntry) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockTimeEntryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return domain.ErrTimeEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

type mockScheduleRepo struct {
	schedules map[int64]*domain.Schedule
	nextID    int64
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules: make(map[int64]*domain.Schedule),
		nextID:    1,
	}
}

func (m *mockScheduleRepo) List(ctx context.Context) ([]domain.Schedule, error) {
	var result []domain.Schedule
	for id := int64(1); id < m.nextID; id++ {
		if sched, ok := m.schedules[id]; ok {
			result = append(result, *sched)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	if sched, ok := m.schedules[id]; ok {
		return sched, nil
	}
	return nil, domain.ErrScheduleNotFound
}

func (m *mockScheduleRepo) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.Schedule, error) {
	var result []domain.Schedule
	for id := int64(1); id < m.nextID; id++ {
		if sched, ok := m.schedules[id]; ok && sched.EmployeeID == employeeID {
			result = append(result, *sched)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) GetByDate(ctx context.Context, date time.Time) ([]domain.Schedule, error) {
	var result []domain.Schedule
	for id := int64(1); id < m.nextID; id++ {
		if sched, ok := m.schedules[id]; ok {
			y1, m1, d1 := sched.Date.Date()
			y2, m2, d2 := date.Date()
			if y1 == y2 && m1 == m2 && d1 == d2 {
				result = append(result, *sched)
			}
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error) {
	var result []domain.Schedule
	for id := int64(1); id < m.nextID; id++ {
		if sched, ok := m.schedules[id]; ok &&
			!sched.Date.Before(start) && !sched.Date.After(end) {
			result = append(result, *sched)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) Create(ctx context.Context, sched *domain.Schedule) error {
	sched.ID = m.nextID
	sched.CreatedAt = time.Now()
	m.nextID++
	m.schedules[sched.ID] = sched
	return nil
}

func (m *mockScheduleRepo) Update(ctx context.Context, sched *domain.Schedule) error {
	m.schedules[sched.ID] = sched
	return nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.schedules[id]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(m.schedules, id)
	return nil
}

type mockAttendanceRepo struct {
	records map[int64]*domain.AttendanceRecord
	nextID  int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[int64]*domain.AttendanceRecord),
		nextID:  1,
	}
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for id := int64(1); id < m.nextID; id++ {
		if rec, ok := m.records[id]; ok {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) GetByID(ctx context.Context, id int64) (*domain.AttendanceRecord, error) {
	if rec, ok := m.records[id]; ok {
		return rec, nil
	}
	return nil, domain.ErrAttendanceRecordNotFound
}

func (m *mockAttendanceRepo) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for id := int64(1); id < m.nextID; id++ {
		if rec, ok := m.records[id]; ok && rec.EmployeeID == employeeID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for id := int64(1); id < m.nextID; id++ {
		if rec, ok := m.records[id]; ok &&
			!rec.Date.Before(start) && !rec.Date.After(end) {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	rec.ID = m.nextID
	rec.CreatedAt = time.Now()
	m.nextID++
	m.records[rec.ID] = rec
	return nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *mockAttendanceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return domain.ErrAttendanceRecordNotFound
	}
	delete(m.records, id)
	return nil
}
