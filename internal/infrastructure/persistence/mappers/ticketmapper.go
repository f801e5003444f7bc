package mappers

import (
	"fmt"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket-context domain
// entities and persistence models.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error)

	CommentToModel(entity *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	CommentsToDomain(list []*models.CommentModel) ([]*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		Status:       entity.Status().String(),
		Priority:     entity.Priority().String(),
		CreatorID:    entity.CreatorID(),
		AssigneeID:   entity.AssigneeID(),
		Position:     entity.Position(),
		CommentCount: entity.CommentCount(),
		CreatedAt:    entity.CreatedAt().UnixMilli(),
		UpdatedAt:    entity.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		ticket.Status(model.Status),
		ticket.Priority(model.Priority),
		model.CreatorID,
		model.AssigneeID,
		model.Position,
		model.CommentCount,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *TicketMapperImpl) CommentToModel(entity *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		AuthorID:  entity.AuthorID(),
		Content:   entity.Content(),
		Type:      entity.Type().String(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		ticket.CommentType(model.Type),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment entity: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) CommentsToDomain(list []*models.CommentModel) ([]*ticket.Comment, error) {
	entities := make([]*ticket.Comment, 0, len(list))
	for _, model := range list {
		entity, err := m.CommentToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
