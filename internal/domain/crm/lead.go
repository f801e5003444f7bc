package crm

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return true
	}
	return false
}

type Lead struct {
	id        uint
	name      string
	company   string
	email     string
	phone     string
	source    string
	status    LeadStatus
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewLead(name, company, email, phone, source string, ownerID uint) (*Lead, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Lead{
		name:      name,
		company:   company,
		email:     email,
		phone:     phone,
		source:    source,
		status:    LeadStatusNew,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructLead(
	id uint,
	name, company, email, phone, source string,
	status LeadStatus,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Lead, error) {
	if id == 0 {
		return nil, fmt.Errorf("lead ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Lead{
		id:        id,
		name:      name,
		company:   company,
		email:     email,
		phone:     phone,
		source:    source,
		status:    status,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (l *Lead) ID() uint { return l.id }

func (l *Lead) Name() string { return l.name }

func (l *Lead) Company() string { return l.company }

func (l *Lead) Email() string { return l.email }

func (l *Lead) Phone() string { return l.phone }

func (l *Lead) Source() string { return l.source }

func (l *Lead) Status() LeadStatus { return l.status }

func (l *Lead) OwnerID() uint { return l.ownerID }

func (l *Lead) CreatedAt() time.Time { return l.createdAt }

func (l *Lead) UpdatedAt() time.Time { return l.updatedAt }

func (l *Lead) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("lead ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("lead ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Lead) Update(name, company, email, phone, source string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	l.name = name
	l.company = company
	l.email = email
	l.phone = phone
	l.source = source
	l.updatedAt = biztime.NowUTC()
	return nil
}

func (l *Lead) ChangeStatus(status LeadStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	l.status = status
	l.updatedAt = biztime.NowUTC()
	return nil
}
