package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/project"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListTasksQuery struct {
	query.BaseFilter
	Status     *string
	SprintID   *uint
	AssigneeID *uint
}

type ListTasksResult struct {
	Tasks []*TaskDTO `json:"tasks"`
	Total int64      `json:"total"`
}

type CreateTaskCommand struct {
	Title       string
	Description string
	SprintID    *uint
	AssigneeID  *uint
	DueDate     *time.Time
}

type UpdateTaskCommand struct {
	TaskID      uint
	Title       string
	Description string
	SprintID    *uint
	AssigneeID  *uint
	DueDate     *time.Time
	Status      *string
}

type DeleteTaskCommand struct {
	TaskID uint
}

type TaskUseCases struct {
	taskRepo   project.TaskRepository
	sprintRepo project.SprintRepository
	logger     logger.Interface
}

func NewTaskUseCases(
	taskRepo project.TaskRepository,
	sprintRepo project.SprintRepository,
	logger logger.Interface,
) *TaskUseCases {
	return &TaskUseCases{
		taskRepo:   taskRepo,
		sprintRepo: sprintRepo,
		logger:     logger,
	}
}

func (uc *TaskUseCases) List(ctx context.Context, q ListTasksQuery) (*ListTasksResult, error) {
	filter := project.TaskFilter{BaseFilter: q.BaseFilter, SprintID: q.SprintID, AssigneeID: q.AssigneeID}
	if q.Status != nil {
		status := project.TaskStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	tasks, total, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	dtos := make([]*TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = NewTaskDTO(t)
	}
	return &ListTasksResult{Tasks: dtos, Total: total}, nil
}

func (uc *TaskUseCases) Create(ctx context.Context, cmd CreateTaskCommand) (*TaskDTO, error) {
	if cmd.SprintID != nil {
		if _, err := uc.sprintRepo.GetByID(ctx, *cmd.SprintID); err != nil {
			return nil, err
		}
	}

	task, err := project.NewTask(cmd.Title, cmd.Description, cmd.SprintID, cmd.AssigneeID, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Save(ctx, task); err != nil {
		uc.logger.Errorw("failed to create task", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("task created", "task_id", task.ID())
	return NewTaskDTO(task), nil
}

func (uc *TaskUseCases) Update(ctx context.Context, cmd UpdateTaskCommand) (*TaskDTO, error) {
	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}
	if cmd.SprintID != nil {
		if _, err := uc.sprintRepo.GetByID(ctx, *cmd.SprintID); err != nil {
			return nil, err
		}
	}

	task, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := task.Update(cmd.Title, cmd.Description, cmd.SprintID, cmd.AssigneeID, cmd.DueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != nil {
		if err := task.ChangeStatus(project.TaskStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	return NewTaskDTO(task), nil
}

func (uc *TaskUseCases) Delete(ctx context.Context, cmd DeleteTaskCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}

	if _, err := uc.taskRepo.GetByID(ctx, cmd.TaskID); err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		uc.logger.Errorw("failed to delete task", "task_id", cmd.TaskID, "error", err)
		return err
	}

	uc.logger.Infow("task deleted", "task_id", cmd.TaskID)
	return nil
}
