package usecases

import (
	"time"

	"flowdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewNotificationDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Body:      n.Body(),
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}

type TemplateDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTemplateDTO(t *notification.Template) *TemplateDTO {
	return &TemplateDTO{
		ID:        t.ID(),
		Name:      t.Name(),
		Kind:      t.Kind().String(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
