package crm

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type CaseStatus string

const (
	CaseStatusOpen    CaseStatus = "open"
	CaseStatusPending CaseStatus = "pending"
	CaseStatusClosed  CaseStatus = "closed"
)

func (s CaseStatus) String() string {
	return string(s)
}

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed:
		return true
	}
	return false
}

// Case is a customer support case attached to an account.
type Case struct {
	id          uint
	subject     string
	description string
	status      CaseStatus
	accountID   *uint
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCase(subject, description string, accountID *uint, ownerID uint) (*Case, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Case{
		subject:     subject,
		description: description,
		status:      CaseStatusOpen,
		accountID:   accountID,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCase(
	id uint,
	subject, description string,
	status CaseStatus,
	accountID *uint,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Case, error) {
	if id == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Case{
		id:          id,
		subject:     subject,
		description: description,
		status:      status,
		accountID:   accountID,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Case) ID() uint { return c.id }

func (c *Case) Subject() string { return c.subject }

func (c *Case) Description() string { return c.description }

func (c *Case) Status() CaseStatus { return c.status }

func (c *Case) AccountID() *uint { return c.accountID }

func (c *Case) OwnerID() uint { return c.ownerID }

func (c *Case) CreatedAt() time.Time { return c.createdAt }

func (c *Case) UpdatedAt() time.Time { return c.updatedAt }

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Case) Update(subject, description string, accountID *uint) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject cannot be empty")
	}
	if len(subject) > 200 {
		return fmt.Errorf("subject exceeds maximum length of 200 characters")
	}

	c.subject = subject
	c.description = description
	c.accountID = accountID
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Case) ChangeStatus(status CaseStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	c.status = status
	c.updatedAt = biztime.NowUTC()
	return nil
}
