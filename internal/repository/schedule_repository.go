package repository

import (
	"context"
	"time"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
)

// ScheduleRepository определяет интерфейс для работы с запланированными сменами
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.Schedule, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.Schedule, error)
	GetByDate(ctx context.Context, date time.Time) ([]domain.Schedule, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) error
	Update(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id int64) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository создаёт новый экземпляр репозитория
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) List(ctx context.Context) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).Order("id ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.db.WithContext(ctx).First(&schedule, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByDate сравнивает только календарный день, время суток не учитывается
func (r *scheduleRepository) GetByDate(ctx context.Context, date time.Time) ([]domain.Schedule, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nextDay := dayStart.AddDate(0, 0, 1)

	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", dayStart, nextDay).
		Order("id ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByDateRange возвращает смены с датой в диапазоне [start, end] включительно
func (r *scheduleRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("id ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Schedule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}
