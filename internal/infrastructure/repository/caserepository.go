package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

var allowedCaseOrderByFields = map[string]bool{
	"id":         true,
	"subject":    true,
	"status":     true,
	"account_id": true,
	"created_at": true,
	"updated_at": true,
}

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CRMMapper
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db:     db,
		mapper: mappers.NewCRMMapper(),
	}
}

func (r *CaseRepository) Save(ctx context.Context, c *crm.Case) error {
	model := r.mapper.CaseToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save case: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CaseRepository) Update(ctx context.Context, c *crm.Case) error {
	model := r.mapper.CaseToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CaseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"subject":     model.Subject,
			"description": model.Description,
			"status":      model.Status,
			"account_id":  model.AccountID,
			"owner_id":    model.OwnerID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update case: %w", result.Error)
	}
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, caseID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CaseModel{}, caseID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("case not found")
	}
	return nil
}

func (r *CaseRepository) GetByID(ctx context.Context, caseID uint) (*crm.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, caseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	return r.mapper.CaseToDomain(&model)
}

func (r *CaseRepository) List(ctx context.Context, filter crm.CaseFilter) ([]*crm.Case, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CaseModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	if filter.SortBy != "" && allowedCaseOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.CaseModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", err)
	}

	cases, err := r.mapper.CasesToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}
