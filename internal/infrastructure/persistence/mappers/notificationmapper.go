package mappers

import (
	"fmt"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between notification and
// template domain entities and their persistence models.
type NotificationMapper interface {
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToDomainList(list []*models.NotificationModel) ([]*notification.Notification, error)

	TemplateToModel(entity *notification.Template) *models.TemplateModel
	TemplateToDomain(model *models.TemplateModel) (*notification.Template, error)
	TemplatesToDomain(list []*models.TemplateModel) ([]*notification.Template, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		Title:     entity.Title(),
		Body:      entity.Body(),
		Read:      entity.IsRead(),
		ReadAt:    timePtrToMilliPtr(entity.ReadAt()),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Title,
		model.Body,
		model.Read,
		milliPtrToTimePtr(model.ReadAt),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToDomainList(list []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(list))
	for _, model := range list {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *NotificationMapperImpl) TemplateToModel(entity *notification.Template) *models.TemplateModel {
	return &models.TemplateModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Kind:      entity.Kind().String(),
		Subject:   entity.Subject(),
		Body:      entity.Body(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) TemplateToDomain(model *models.TemplateModel) (*notification.Template, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructTemplate(
		model.ID,
		model.Name,
		notification.TemplateKind(model.Kind),
		model.Subject,
		model.Body,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) TemplatesToDomain(list []*models.TemplateModel) ([]*notification.Template, error) {
	entities := make([]*notification.Template, 0, len(list))
	for _, model := range list {
		entity, err := m.TemplateToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
