package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flowdesk/internal/domain/project"
	"flowdesk/internal/infrastructure/persistence/mappers"
	"flowdesk/internal/infrastructure/persistence/models"
	"flowdesk/internal/shared/db"
	apperrors "flowdesk/internal/shared/errors"
)

var allowedSprintOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"status":     true,
	"start_date": true,
	"end_date":   true,
	"created_at": true,
	"updated_at": true,
}

type SprintRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *SprintRepository) Save(ctx context.Context, s *project.Sprint) error {
	model := r.mapper.SprintToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sprint: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SprintRepository) Update(ctx context.Context, s *project.Sprint) error {
	model := r.mapper.SprintToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SprintModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"goal":       model.Goal,
			"status":     model.Status,
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update sprint: %w", result.Error)
	}
	return nil
}

func (r *SprintRepository) Delete(ctx context.Context, sprintID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SprintModel{}, sprintID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sprint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("sprint not found")
	}
	return nil
}

func (r *SprintRepository) GetByID(ctx context.Context, sprintID uint) (*project.Sprint, error) {
	var model models.SprintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, sprintID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("sprint not found")
		}
		return nil, fmt.Errorf("failed to find sprint: %w", err)
	}

	return r.mapper.SprintToDomain(&model)
}

func (r *SprintRepository) List(ctx context.Context, filter project.SprintFilter) ([]*project.Sprint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SprintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sprints: %w", err)
	}

	if filter.SortBy != "" && allowedSprintOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.SprintModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sprints: %w", err)
	}

	sprints, err := r.mapper.SprintsToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return sprints, total, nil
}
