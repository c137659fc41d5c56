package domain

import (
	"time"
)

// Статусы записи рабочего времени
const (
	TimeEntryStatusActive    = "active"
	TimeEntryStatusCompleted = "completed"
	TimeEntryStatusPending   = "pending"
)

// Статусы посещаемости
const (
	AttendanceStatusPresent    = "present"
	AttendanceStatusAbsent     = "absent"
	AttendanceStatusLate       = "late"
	AttendanceStatusEarlyLeave = "early_leave"
)

// Шаблоны повторения смен
const (
	RecurringDaily   = "daily"
	RecurringWeekly  = "weekly"
	RecurringMonthly = "monthly"
)

// Employee представляет сотрудника
type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string    `json:"firstName" gorm:"column:first_name;type:varchar(100);not null"`
	LastName   string    `json:"lastName" gorm:"column:last_name;type:varchar(100);not null"`
	Email      string    `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	Department string    `json:"department" gorm:"type:varchar(100);not null"`
	Position   string    `json:"position" gorm:"type:varchar(100);not null"`
	HourlyRate *string   `json:"hourlyRate" gorm:"column:hourly_rate;type:decimal(10,2)"`
	IsActive   bool      `json:"isActive" gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// FullName возвращает полное имя сотрудника
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// TimeEntry представляет фактически отработанную смену.
// TotalHours остаётся nil, пока запись не закрыта через clock-out.
type TimeEntry struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID    int64      `json:"employeeId" gorm:"column:employee_id;not null;index"`
	ClockIn       time.Time  `json:"clockIn" gorm:"column:clock_in;not null"`
	ClockOut      *time.Time `json:"clockOut" gorm:"column:clock_out"`
	BreakDuration int        `json:"breakDuration" gorm:"column:break_duration;not null;default:0"`
	TotalHours    *string    `json:"totalHours" gorm:"column:total_hours;type:decimal(5,2)"`
	Status        string     `json:"status" gorm:"type:varchar(20);not null;default:active"`
	Notes         *string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (TimeEntry) TableName() string {
	return "time_entries"
}

// Schedule представляет запланированную смену сотрудника
type Schedule struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID       int64     `json:"employeeId" gorm:"column:employee_id;not null;index"`
	Date             time.Time `json:"date" gorm:"not null"`
	StartTime        string    `json:"startTime" gorm:"column:start_time;type:varchar(5);not null"`
	EndTime          string    `json:"endTime" gorm:"column:end_time;type:varchar(5);not null"`
	IsRecurring      bool      `json:"isRecurring" gorm:"column:is_recurring;not null;default:false"`
	RecurringPattern *string   `json:"recurringPattern" gorm:"column:recurring_pattern;type:varchar(20)"`
	Notes            *string   `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Schedule) TableName() string {
	return "schedules"
}

// AttendanceRecord представляет дневную отметку посещаемости
type AttendanceRecord struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID     int64     `json:"employeeId" gorm:"column:employee_id;not null;index"`
	Date           time.Time `json:"date" gorm:"not null"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null"`
	ScheduledHours *string   `json:"scheduledHours" gorm:"column:scheduled_hours;type:decimal(5,2)"`
	ActualHours    *string   `json:"actualHours" gorm:"column:actual_hours;type:decimal(5,2)"`
	Notes          *string   `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
