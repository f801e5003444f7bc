// Package notification holds in-app notifications and reusable message
// templates for the email and SMS channels.
package notification

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Notification struct {
	id        uint
	userID    uint
	title     string
	body      string
	read      bool
	readAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewNotification(userID uint, title, body string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()
	return &Notification{
		userID:    userID,
		title:     title,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	title, body string,
	read bool,
	readAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		body:      body,
		read:      read,
		readAt:    readAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Notification) ID() uint { return n.id }

func (n *Notification) UserID() uint { return n.userID }

func (n *Notification) Title() string { return n.title }

func (n *Notification) Body() string { return n.body }

func (n *Notification) IsRead() bool { return n.read }

func (n *Notification) ReadAt() *time.Time { return n.readAt }

func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) UpdatedAt() time.Time { return n.updatedAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead is idempotent: marking an already-read notification keeps
// the original read timestamp.
func (n *Notification) MarkRead() {
	if n.read {
		return
	}
	now := biztime.NowUTC()
	n.read = true
	n.readAt = &now
	n.updatedAt = now
}
