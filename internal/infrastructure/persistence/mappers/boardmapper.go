package mappers

import (
	"fmt"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/infrastructure/persistence/models"
)

// ColumnMapper handles the conversion between Column domain entities
// and persistence models.
type ColumnMapper interface {
	ToModel(entity *board.Column) *models.ColumnModel
	ToDomain(model *models.ColumnModel) (*board.Column, error)
	ToDomainList(list []*models.ColumnModel) ([]*board.Column, error)
}

type ColumnMapperImpl struct{}

func NewColumnMapper() ColumnMapper {
	return &ColumnMapperImpl{}
}

func (m *ColumnMapperImpl) ToModel(entity *board.Column) *models.ColumnModel {
	return &models.ColumnModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Status:    entity.Status(),
		SortOrder: entity.SortOrder(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *ColumnMapperImpl) ToDomain(model *models.ColumnModel) (*board.Column, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := board.ReconstructColumn(
		model.ID,
		model.Title,
		model.Status,
		model.SortOrder,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct column entity: %w", err)
	}

	return entity, nil
}

func (m *ColumnMapperImpl) ToDomainList(list []*models.ColumnModel) ([]*board.Column, error) {
	entities := make([]*board.Column, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
