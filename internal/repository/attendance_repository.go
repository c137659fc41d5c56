package repository

import (
	"context"
	"time"

	"github.com/workforce-api/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для работы с отметками посещаемости
type AttendanceRepository interface {
	List(ctx context.Context) ([]domain.AttendanceRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.AttendanceRecord, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error)
	Create(ctx context.Context, record *domain.AttendanceRecord) error
	Update(ctx context.Context, record *domain.AttendanceRecord) error
	Delete(ctx context.Context, id int64) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttendanceRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) GetByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}

// GetByDateRange возвращает отметки с датой в диапазоне [start, end] включительно
func (r *attendanceRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) Update(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.AttendanceRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAttendanceRecordNotFound
	}
	return nil
}
