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

type PayrollRepository struct {
	db     *gorm.DB
	mapper mappers.HRMapper
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{
		db:     db,
		mapper: mappers.NewHRMapper(),
	}
}

func (r *PayrollRepository) Save(ctx context.Context, p *hr.Payroll) error {
	model := r.mapper.PayrollToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("payroll entry for this period already exists")
		}
		return fmt.Errorf("failed to save payroll entry: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PayrollRepository) Update(ctx context.Context, p *hr.Payroll) error {
	model := r.mapper.PayrollToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PayrollModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"base_salary": model.BaseSalary,
			"bonus":       model.Bonus,
			"deductions":  model.Deductions,
			"status":      model.Status,
			"paid_at":     model.PaidAt,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payroll entry: %w", result.Error)
	}
	return nil
}

func (r *PayrollRepository) Delete(ctx context.Context, payrollID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PayrollModel{}, payrollID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("payroll entry not found")
	}
	return nil
}

func (r *PayrollRepository) GetByID(ctx context.Context, payrollID uint) (*hr.Payroll, error) {
	var model models.PayrollModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, payrollID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("payroll entry not found")
		}
		return nil, fmt.Errorf("failed to find payroll entry: %w", err)
	}

	return r.mapper.PayrollToDomain(&model)
}

func (r *PayrollRepository) GetByPeriod(ctx context.Context, employeeID uint, year int, month time.Month) (*hr.Payroll, error) {
	var model models.PayrollModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, int(month)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("payroll entry not found")
		}
		return nil, fmt.Errorf("failed to find payroll entry: %w", err)
	}

	return r.mapper.PayrollToDomain(&model)
}

func (r *PayrollRepository) List(ctx context.Context, filter hr.PayrollFilter) ([]*hr.Payroll, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PayrollModel{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", int(*filter.Month))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	var list []*models.PayrollModel
	if err := query.
		Order("year DESC, month DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}

	entries, err := r.mapper.PayrollsToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
