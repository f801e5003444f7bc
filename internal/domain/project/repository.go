package project

import (
	"context"

	"flowdesk/internal/shared/query"
)

type SprintFilter struct {
	query.BaseFilter
	Status *SprintStatus
}

type SprintRepository interface {
	Save(ctx context.Context, sprint *Sprint) error
	Update(ctx context.Context, sprint *Sprint) error
	Delete(ctx context.Context, sprintID uint) error
	GetByID(ctx context.Context, sprintID uint) (*Sprint, error)
	List(ctx context.Context, filter SprintFilter) ([]*Sprint, int64, error)
}

type TaskFilter struct {
	query.BaseFilter
	Status     *TaskStatus
	SprintID   *uint
	AssigneeID *uint
}

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, taskID uint) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*Task, int64, error)
}
