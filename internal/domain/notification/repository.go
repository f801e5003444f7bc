package notification

import (
	"context"

	"flowdesk/internal/shared/query"
)

type NotificationFilter struct {
	query.BaseFilter
	UserID *uint
	Unread *bool
}

type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	Update(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, notificationID uint) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]*Notification, int64, error)
	// MarkAllRead marks every unread notification for the user and
	// returns the number of rows touched.
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type TemplateFilter struct {
	query.BaseFilter
	Kind *TemplateKind
}

type TemplateRepository interface {
	Save(ctx context.Context, template *Template) error
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, templateID uint) error
	GetByID(ctx context.Context, templateID uint) (*Template, error)
	GetByName(ctx context.Context, name string) (*Template, error)
	List(ctx context.Context, filter TemplateFilter) ([]*Template, int64, error)
}
