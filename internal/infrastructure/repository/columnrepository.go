package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

type ColumnRepository struct {
	db     *gorm.DB
	mapper mappers.ColumnMapper
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{
		db:     db,
		mapper: mappers.NewColumnMapper(),
	}
}

func (r *ColumnRepository) Save(ctx context.Context, c *board.Column) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save column: %w", err)
	}

	return c.SetID(model.ID)
}

// SaveBatch persists the given columns in one INSERT. Used by the
// default board seeding.
func (r *ColumnRepository) SaveBatch(ctx context.Context, columns []*board.Column) error {
	if len(columns) == 0 {
		return nil
	}

	list := make([]*models.ColumnModel, len(columns))
	for i, c := range columns {
		list[i] = r.mapper.ToModel(c)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&list).Error; err != nil {
		return fmt.Errorf("failed to save columns: %w", err)
	}

	for i, c := range columns {
		if err := c.SetID(list[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ColumnRepository) Update(ctx context.Context, c *board.Column) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ColumnModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"status":     model.Status,
			"sort_order": model.SortOrder,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update column: %w", result.Error)
	}
	return nil
}

func (r *ColumnRepository) Delete(ctx context.Context, columnID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ColumnModel{}, columnID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete column: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("column not found")
	}
	return nil
}

func (r *ColumnRepository) GetByID(ctx context.Context, columnID uint) (*board.Column, error) {
	var model models.ColumnModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, columnID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("column not found")
		}
		return nil, fmt.Errorf("failed to find column: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ColumnRepository) List(ctx context.Context) ([]*board.Column, error) {
	var list []*models.ColumnModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("sort_order ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ColumnRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ColumnModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count columns: %w", err)
	}
	return total, nil
}
