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

var allowedAccountOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"industry":   true,
	"owner_id":   true,
	"created_at": true,
	"updated_at": true,
}

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.CRMMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewCRMMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *crm.Account) error {
	model := r.mapper.AccountToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *crm.Account) error {
	model := r.mapper.AccountToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"industry":   model.Industry,
			"website":    model.Website,
			"phone":      model.Phone,
			"email":      model.Email,
			"owner_id":   model.OwnerID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AccountModel{}, accountID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uint) (*crm.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.AccountToDomain(&model)
}

func (r *AccountRepository) List(ctx context.Context, filter crm.AccountFilter) ([]*crm.Account, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AccountModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if filter.SortBy != "" && allowedAccountOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.AccountModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts, err := r.mapper.AccountsToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}
