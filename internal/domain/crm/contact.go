package crm

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Contact struct {
	id        uint
	accountID *uint
	firstName string
	lastName  string
	email     string
	phone     string
	jobTitle  string
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewContact(accountID *uint, firstName, lastName, email, phone, jobTitle string, ownerID uint) (*Contact, error) {
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(lastName) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Contact{
		accountID: accountID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		jobTitle:  jobTitle,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructContact(
	id uint,
	accountID *uint,
	firstName, lastName, email, phone, jobTitle string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Contact, error) {
	if id == 0 {
		return nil, fmt.Errorf("contact ID cannot be zero")
	}
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}

	return &Contact{
		id:        id,
		accountID: accountID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		jobTitle:  jobTitle,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Contact) ID() uint { return c.id }

func (c *Contact) AccountID() *uint { return c.accountID }

func (c *Contact) FirstName() string { return c.firstName }

func (c *Contact) LastName() string { return c.lastName }

func (c *Contact) Email() string { return c.email }

func (c *Contact) Phone() string { return c.phone }

func (c *Contact) JobTitle() string { return c.jobTitle }

func (c *Contact) OwnerID() uint { return c.ownerID }

func (c *Contact) CreatedAt() time.Time { return c.createdAt }

func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }

func (c *Contact) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contact ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contact ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Contact) Update(accountID *uint, firstName, lastName, email, phone, jobTitle string) error {
	if len(firstName) == 0 {
		return fmt.Errorf("first name cannot be empty")
	}
	if len(lastName) == 0 {
		return fmt.Errorf("last name cannot be empty")
	}

	c.accountID = accountID
	c.firstName = firstName
	c.lastName = lastName
	c.email = email
	c.phone = phone
	c.jobTitle = jobTitle
	c.updatedAt = biztime.NowUTC()
	return nil
}
