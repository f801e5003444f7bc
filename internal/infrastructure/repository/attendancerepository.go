package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

type AttendanceRepository struct {
	db     *gorm.DB
	mapper mappers.HRMapper
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db:     db,
		mapper: mappers.NewHRMapper(),
	}
}

func (r *AttendanceRepository) Save(ctx context.Context, a *hr.Attendance) error {
	model := r.mapper.AttendanceToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttendanceRepository) Update(ctx context.Context, a *hr.Attendance) error {
	model := r.mapper.AttendanceToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AttendanceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"check_in":   model.CheckIn,
			"check_out":  model.CheckOut,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update attendance record: %w", result.Error)
	}
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, attendanceID uint) (*hr.Attendance, error) {
	var model models.AttendanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attendanceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("attendance record not found")
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return r.mapper.AttendanceToDomain(&model)
}

func (r *AttendanceRepository) GetOpenForDay(ctx context.Context, employeeID uint, day time.Time) (*hr.Attendance, error) {
	var model models.AttendanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("employee_id = ? AND date = ? AND check_out IS NULL", employeeID, day.UnixMilli()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("no open attendance record for this day")
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return r.mapper.AttendanceToDomain(&model)
}

func (r *AttendanceRepository) List(ctx context.Context, filter hr.AttendanceFilter) ([]*hr.Attendance, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AttendanceModel{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	var list []*models.AttendanceModel
	if err := query.
		Order("date DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	records, err := r.mapper.AttendancesToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
