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

var allowedContactOrderByFields = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"account_id": true,
	"created_at": true,
	"updated_at": true,
}

type ContactRepository struct {
	db     *gorm.DB
	mapper mappers.CRMMapper
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		db:     db,
		mapper: mappers.NewCRMMapper(),
	}
}

func (r *ContactRepository) Save(ctx context.Context, c *crm.Contact) error {
	model := r.mapper.ContactToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ContactRepository) Update(ctx context.Context, c *crm.Contact) error {
	model := r.mapper.ContactToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ContactModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"phone":      model.Phone,
			"job_title":  model.JobTitle,
			"account_id": model.AccountID,
			"owner_id":   model.OwnerID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, contactID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ContactModel{}, contactID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contact not found")
	}
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, contactID uint) (*crm.Contact, error) {
	var model models.ContactModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, contactID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("contact not found")
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	return r.mapper.ContactToDomain(&model)
}

func (r *ContactRepository) List(ctx context.Context, filter crm.ContactFilter) ([]*crm.Contact, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ContactModel{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	if filter.SortBy != "" && allowedContactOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.ContactModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts, err := r.mapper.ContactsToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
