// Package project holds the project-tracking entities: sprints and tasks.
package project

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "planned"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
)

func (s SprintStatus) String() string {
	return string(s)
}

func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusPlanned, SprintStatusActive, SprintStatusCompleted:
		return true
	}
	return false
}

type Sprint struct {
	id        uint
	name      string
	goal      string
	status    SprintStatus
	startDate *time.Time
	endDate   *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewSprint(name, goal string, startDate, endDate *time.Time) (*Sprint, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := biztime.NowUTC()
	return &Sprint{
		name:      name,
		goal:      goal,
		status:    SprintStatusPlanned,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSprint(
	id uint,
	name, goal string,
	status SprintStatus,
	startDate, endDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Sprint, error) {
	if id == 0 {
		return nil, fmt.Errorf("sprint ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Sprint{
		id:        id,
		name:      name,
		goal:      goal,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Sprint) ID() uint { return s.id }

func (s *Sprint) Name() string { return s.name }

func (s *Sprint) Goal() string { return s.goal }

func (s *Sprint) Status() SprintStatus { return s.status }

func (s *Sprint) StartDate() *time.Time { return s.startDate }

func (s *Sprint) EndDate() *time.Time { return s.endDate }

func (s *Sprint) CreatedAt() time.Time { return s.createdAt }

func (s *Sprint) UpdatedAt() time.Time { return s.updatedAt }

func (s *Sprint) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sprint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sprint ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Sprint) Update(name, goal string, startDate, endDate *time.Time) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return fmt.Errorf("end date must be after start date")
	}

	s.name = name
	s.goal = goal
	s.startDate = startDate
	s.endDate = endDate
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Sprint) ChangeStatus(status SprintStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	s.status = status
	s.updatedAt = biztime.NowUTC()
	return nil
}
