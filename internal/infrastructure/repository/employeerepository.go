package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/hr"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

var allowedEmployeeOrderByFields = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"department": true,
	"position":   true,
	"hired_at":   true,
	"created_at": true,
	"updated_at": true,
}

type EmployeeRepository struct {
	db     *gorm.DB
	mapper mappers.HRMapper
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		mapper: mappers.NewHRMapper(),
	}
}

func (r *EmployeeRepository) Save(ctx context.Context, e *hr.Employee) error {
	model := r.mapper.EmployeeToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("employee email is already registered")
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *hr.Employee) error {
	model := r.mapper.EmployeeToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EmployeeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"position":   model.Position,
			"department": model.Department,
			"salary":     model.Salary,
			"hired_at":   model.HiredAt,
			"user_id":    model.UserID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("employee email is already registered")
		}
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeModel{}, employeeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID uint) (*hr.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, employeeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return r.mapper.EmployeeToDomain(&model)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*hr.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return r.mapper.EmployeeToDomain(&model)
}

func (r *EmployeeRepository) List(ctx context.Context, filter hr.EmployeeFilter) ([]*hr.Employee, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EmployeeModel{})

	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.SortBy != "" && allowedEmployeeOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.EmployeeModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	employees, err := r.mapper.EmployeesToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}
