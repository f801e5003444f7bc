// Package hr holds the human-resources entities: employees, attendance
// records, and payroll entries.
package hr

import (
	"fmt"
	"net/mail"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Employee struct {
	id         uint
	firstName  string
	lastName   string
	email      string
	position   string
	department string
	salary     float64
	hiredAt    *time.Time
	userID     *uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEmployee(firstName, lastName, email, position, department string, salary float64, hiredAt *time.Time, userID *uint) (*Employee, error) {
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(lastName) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if salary < 0 {
		return nil, fmt.Errorf("salary cannot be negative")
	}

	now := biztime.NowUTC()
	return &Employee{
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		position:   position,
		department: department,
		salary:     salary,
		hiredAt:    hiredAt,
		userID:     userID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructEmployee(
	id uint,
	firstName, lastName, email, position, department string,
	salary float64,
	hiredAt *time.Time,
	userID *uint,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if len(firstName) == 0 || len(lastName) == 0 {
		return nil, fmt.Errorf("employee name is required")
	}

	return &Employee{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		email:      email,
		position:   position,
		department: department,
		salary:     salary,
		hiredAt:    hiredAt,
		userID:     userID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (e *Employee) ID() uint { return e.id }

func (e *Employee) FirstName() string { return e.firstName }

func (e *Employee) LastName() string { return e.lastName }

func (e *Employee) FullName() string { return e.firstName + " " + e.lastName }

func (e *Employee) Email() string { return e.email }

func (e *Employee) Position() string { return e.position }

func (e *Employee) Department() string { return e.department }

func (e *Employee) Salary() float64 { return e.salary }

func (e *Employee) HiredAt() *time.Time { return e.hiredAt }

func (e *Employee) UserID() *uint { return e.userID }

func (e *Employee) CreatedAt() time.Time { return e.createdAt }

func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Employee) Update(firstName, lastName, email, position, department string, salary float64, hiredAt *time.Time) error {
	if len(firstName) == 0 {
		return fmt.Errorf("first name cannot be empty")
	}
	if len(lastName) == 0 {
		return fmt.Errorf("last name cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	if salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}

	e.firstName = firstName
	e.lastName = lastName
	e.email = email
	e.position = position
	e.department = department
	e.salary = salary
	e.hiredAt = hiredAt
	e.updatedAt = biztime.NowUTC()
	return nil
}

func (e *Employee) LinkUser(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	e.userID = &userID
	e.updatedAt = biztime.NowUTC()
	return nil
}
