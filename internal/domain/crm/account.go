// Package crm holds the customer-relationship entities: accounts, contacts,
// leads, opportunities and cases.
package crm

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Account struct {
	id        uint
	name      string
	industry  string
	website   string
	phone     string
	email     string
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewAccount(name, industry, website, phone, email string, ownerID uint) (*Account, error) {
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
	return &Account{
		name:      name,
		industry:  industry,
		website:   website,
		phone:     phone,
		email:     email,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAccount(
	id uint,
	name, industry, website, phone, email string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Account{
		id:        id,
		name:      name,
		industry:  industry,
		website:   website,
		phone:     phone,
		email:     email,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Account) ID() uint { return a.id }

func (a *Account) Name() string { return a.name }

func (a *Account) Industry() string { return a.industry }

func (a *Account) Website() string { return a.website }

func (a *Account) Phone() string { return a.phone }

func (a *Account) Email() string { return a.email }

func (a *Account) OwnerID() uint { return a.ownerID }

func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) Update(name, industry, website, phone, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	a.name = name
	a.industry = industry
	a.website = website
	a.phone = phone
	a.email = email
	a.updatedAt = biztime.NowUTC()
	return nil
}
