package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

type TemplateRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *TemplateRepository) Save(ctx context.Context, t *notification.Template) error {
	model := r.mapper.TemplateToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("template name is already in use")
		}
		return fmt.Errorf("failed to save template: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TemplateRepository) Update(ctx context.Context, t *notification.Template) error {
	model := r.mapper.TemplateToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TemplateModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"kind":       model.Kind,
			"subject":    model.Subject,
			"body":       model.Body,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("template name is already in use")
		}
		return fmt.Errorf("failed to update template: %w", result.Error)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, templateID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TemplateModel{}, templateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("template not found")
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, templateID uint) (*notification.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, templateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("template not found")
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.mapper.TemplateToDomain(&model)
}

func (r *TemplateRepository) GetByName(ctx context.Context, name string) (*notification.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("template not found")
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.mapper.TemplateToDomain(&model)
}

func (r *TemplateRepository) List(ctx context.Context, filter notification.TemplateFilter) ([]*notification.Template, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TemplateModel{})

	if filter.Kind != nil {
		query = query.Where("kind = ?", filter.Kind.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	var list []*models.TemplateModel
	if err := query.
		Order("name ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	templates, err := r.mapper.TemplatesToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}
