package repository

import (
	"context"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
)

// TimeEntryRepository определяет интерфейс для работы с записями рабочего времени
type TimeEntryRepository interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeEntry, error)
	GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.TimeEntry, error)
	Create(ctx context.Context, entry *domain.TimeEntry) error
	Update(ctx context.Context, entry *domain.TimeEntry) error
	Delete(ctx context.Context, id int64) error
}

type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository создаёт новый экземпляр репозитория
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) List(ctx context.Context) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTimeEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepository) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// GetActiveByEmployee возвращает первую незакрытую запись сотрудника
// или (nil, nil), если такой записи нет.
func (r *timeEntryRepository) GetActiveByEmployee(ctx context.Context, employeeID int64) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, domain.TimeEntryStatusActive).
		Order("id ASC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.TimeEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}
