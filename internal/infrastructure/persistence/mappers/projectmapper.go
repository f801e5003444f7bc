package mappers

import (
	"fmt"

	"flowdesk/internal/domain/project"
	"flowdesk/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between sprint and task domain
// entities and their persistence models.
type ProjectMapper interface {
	SprintToModel(entity *project.Sprint) *models.SprintModel
	SprintToDomain(model *models.SprintModel) (*project.Sprint, error)
	SprintsToDomain(list []*models.SprintModel) ([]*project.Sprint, error)

	TaskToModel(entity *project.Task) *models.TaskModel
	TaskToDomain(model *models.TaskModel) (*project.Task, error)
	TasksToDomain(list []*models.TaskModel) ([]*project.Task, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) SprintToModel(entity *project.Sprint) *models.SprintModel {
	return &models.SprintModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Goal:      entity.Goal(),
		Status:    entity.Status().String(),
		StartDate: timePtrToMilliPtr(entity.StartDate()),
		EndDate:   timePtrToMilliPtr(entity.EndDate()),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) SprintToDomain(model *models.SprintModel) (*project.Sprint, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructSprint(
		model.ID,
		model.Name,
		model.Goal,
		project.SprintStatus(model.Status),
		milliPtrToTimePtr(model.StartDate),
		milliPtrToTimePtr(model.EndDate),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct sprint entity: %w", err)
	}

	return entity, nil
}

func (m *ProjectMapperImpl) SprintsToDomain(list []*models.SprintModel) ([]*project.Sprint, error) {
	entities := make([]*project.Sprint, 0, len(list))
	for _, model := range list {
		entity, err := m.SprintToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *ProjectMapperImpl) TaskToModel(entity *project.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		SprintID:    entity.SprintID(),
		AssigneeID:  entity.AssigneeID(),
		DueDate:     timePtrToMilliPtr(entity.DueDate()),
		CreatedAt:   entity.CreatedAt().UnixMilli(),
		UpdatedAt:   entity.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) TaskToDomain(model *models.TaskModel) (*project.Task, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructTask(
		model.ID,
		model.Title,
		model.Description,
		project.TaskStatus(model.Status),
		model.SprintID,
		model.AssigneeID,
		milliPtrToTimePtr(model.DueDate),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct task entity: %w", err)
	}

	return entity, nil
}

func (m *ProjectMapperImpl) TasksToDomain(list []*models.TaskModel) ([]*project.Task, error) {
	entities := make([]*project.Task, 0, len(list))
	for _, model := range list {
		entity, err := m.TaskToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
