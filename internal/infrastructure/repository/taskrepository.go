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

var allowedTaskOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"sprint_id":   true,
	"assignee_id": true,
	"due_date":    true,
	"created_at":  true,
	"updated_at":  true,
}

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *project.Task) error {
	model := r.mapper.TaskToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TaskRepository) Update(ctx context.Context, t *project.Task) error {
	model := r.mapper.TaskToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"sprint_id":   model.SprintID,
			"assignee_id": model.AssigneeID,
			"due_date":    model.DueDate,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskModel{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("task not found")
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint) (*project.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.TaskToDomain(&model)
}

func (r *TaskRepository) List(ctx context.Context, filter project.TaskFilter) ([]*project.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if filter.SortBy != "" && allowedTaskOrderByFields[filter.SortBy] {
		query = query.Order(filter.OrderClause())
	} else {
		query = query.Order("id ASC")
	}

	var list []*models.TaskModel
	if err := query.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks, err := r.mapper.TasksToDomain(list)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
