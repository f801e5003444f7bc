package project

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	id          uint
	title       string
	description string
	status      TaskStatus
	sprintID    *uint
	assigneeID  *uint
	dueDate     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTask(title, description string, sprintID, assigneeID *uint, dueDate *time.Time) (*Task, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()
	return &Task{
		title:       title,
		description: description,
		status:      TaskStatusTodo,
		sprintID:    sprintID,
		assigneeID:  assigneeID,
		dueDate:     dueDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTask(
	id uint,
	title, description string,
	status TaskStatus,
	sprintID, assigneeID *uint,
	dueDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Task{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		sprintID:    sprintID,
		assigneeID:  assigneeID,
		dueDate:     dueDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Task) ID() uint { return t.id }

func (t *Task) Title() string { return t.title }

func (t *Task) Description() string { return t.description }

func (t *Task) Status() TaskStatus { return t.status }

func (t *Task) SprintID() *uint { return t.sprintID }

func (t *Task) AssigneeID() *uint { return t.assigneeID }

func (t *Task) DueDate() *time.Time { return t.dueDate }

func (t *Task) CreatedAt() time.Time { return t.createdAt }

func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Task) Update(title, description string, sprintID, assigneeID *uint, dueDate *time.Time) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}

	t.title = title
	t.description = description
	t.sprintID = sprintID
	t.assigneeID = assigneeID
	t.dueDate = dueDate
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Task) ChangeStatus(status TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = biztime.NowUTC()
	return nil
}
