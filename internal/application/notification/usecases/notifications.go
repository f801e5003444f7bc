package usecases

import (
	"context"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListNotificationsQuery struct {
	query.BaseFilter
	UserID uint
	Unread *bool
}

type ListNotificationsResult struct {
	Notifications []*NotificationDTO `json:"notifications"`
	Total         int64              `json:"total"`
}

type CreateNotificationCommand struct {
	UserID uint
	Title  string
	Body   string
}

type MarkNotificationReadCommand struct {
	NotificationID uint
	RequesterID    uint
}

type MarkAllNotificationsReadCommand struct {
	UserID uint
}

type DeleteNotificationCommand struct {
	NotificationID uint
	RequesterID    uint
	RequesterRole  authorization.UserRole
}

type NotificationUseCases struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewNotificationUseCases(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *NotificationUseCases {
	return &NotificationUseCases{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *NotificationUseCases) List(ctx context.Context, q ListNotificationsQuery) (*ListNotificationsResult, error) {
	if q.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter := notification.NotificationFilter{
		BaseFilter: q.BaseFilter,
		UserID:     &q.UserID,
		Unread:     q.Unread,
	}

	notifications, total, err := uc.notificationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", q.UserID, "error", err)
		return nil, err
	}

	dtos := make([]*NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = NewNotificationDTO(n)
	}
	return &ListNotificationsResult{Notifications: dtos, Total: total}, nil
}

func (uc *NotificationUseCases) Create(ctx context.Context, cmd CreateNotificationCommand) (*NotificationDTO, error) {
	n, err := notification.NewNotification(cmd.UserID, cmd.Title, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notificationRepo.Save(ctx, n); err != nil {
		uc.logger.Errorw("failed to create notification", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("notification created", "notification_id", n.ID(), "user_id", cmd.UserID)
	return NewNotificationDTO(n), nil
}

// MarkRead is idempotent: marking an already-read notification succeeds
// without changing the read timestamp.
func (uc *NotificationUseCases) MarkRead(ctx context.Context, cmd MarkNotificationReadCommand) (*NotificationDTO, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID() != cmd.RequesterID {
		return nil, errors.NewForbiddenError("cannot read another user's notification")
	}

	if n.IsRead() {
		return NewNotificationDTO(n), nil
	}

	n.MarkRead()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}

	return NewNotificationDTO(n), nil
}

func (uc *NotificationUseCases) MarkAllRead(ctx context.Context, cmd MarkAllNotificationsReadCommand) (int64, error) {
	if cmd.UserID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	touched, err := uc.notificationRepo.MarkAllRead(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to mark notifications read", "user_id", cmd.UserID, "error", err)
		return 0, err
	}

	uc.logger.Infow("notifications marked read", "user_id", cmd.UserID, "count", touched)
	return touched, nil
}

func (uc *NotificationUseCases) Delete(ctx context.Context, cmd DeleteNotificationCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if n.UserID() != cmd.RequesterID && !cmd.RequesterRole.IsAdmin() {
		return errors.NewForbiddenError("cannot delete another user's notification")
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification", "notification_id", cmd.NotificationID, "error", err)
		return err
	}

	return nil
}
