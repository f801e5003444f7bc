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

var allowedLeadOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"company":    true,
	"status":     true,
	"source":     true,
	"created_at": true,
	"updated_at": true,
}

type LeadRepository struct {
	db     *gorm.DB
	mapper mappers.CRMMapper
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{
		db:     db,
		mapper: mappers.NewCRMMapper(),
	}
}

func (r *LeadRepository) Save(ctx context.Context, l *crm.Lead) error {
	model := r.mapper.LeadToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *LeadRepository) Update(ctx context.Context, l *crm.Lead) error {
	model := r.mapper.LeadToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.LeadModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"email":      model.Email,
			"phone":      model.Phone,
			"company":    model.Company,
			"source":     model.Source,
			"status":     model.Status,
			"owner_id":   model.OwnerID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update lead: %w", result.Error)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, leadID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.LeadModel{}, leadID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("lead not found")
	}
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, leadID uint) (*crm.Lead, error) {
	var model models.LeadModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, leadID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("lead not found")
		}
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}

	return r.mapper.LeadToDomain(&model)
}

func (r *LeadRepository) List(ctx context.Context, filter crm.LeadFilter) ([]*crm.Lead, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.LeadModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	if filter.SortBy != "" && allowedLeadOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.LeadModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	leads, err := r.mapper.LeadsToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}
