package usecases

import (
	"context"
	"time"

	"flowdesk/internal/domain/project"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListSprintsQuery struct {
	query.BaseFilter
	Status *string
}

type ListSprintsResult struct {
	Sprints []*SprintDTO `json:"sprints"`
	Total   int64        `json:"total"`
}

type CreateSprintCommand struct {
	Name      string
	Goal      string
	StartDate *time.Time
	EndDate   *time.Time
}

type UpdateSprintCommand struct {
	SprintID  uint
	Name      string
	Goal      string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *string
}

type DeleteSprintCommand struct {
	SprintID uint
}

type SprintUseCases struct {
	sprintRepo project.SprintRepository
	logger     logger.Interface
}

func NewSprintUseCases(sprintRepo project.SprintRepository, logger logger.Interface) *SprintUseCases {
	return &SprintUseCases{sprintRepo: sprintRepo, logger: logger}
}

func (uc *SprintUseCases) List(ctx context.Context, q ListSprintsQuery) (*ListSprintsResult, error) {
	filter := project.SprintFilter{BaseFilter: q.BaseFilter}
	if q.Status != nil {
		status := project.SprintStatus(*q.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	sprints, total, err := uc.sprintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list sprints", "error", err)
		return nil, err
	}

	dtos := make([]*SprintDTO, len(sprints))
	for i, s := range sprints {
		dtos[i] = NewSprintDTO(s)
	}
	return &ListSprintsResult{Sprints: dtos, Total: total}, nil
}

func (uc *SprintUseCases) Create(ctx context.Context, cmd CreateSprintCommand) (*SprintDTO, error) {
	sprint, err := project.NewSprint(cmd.Name, cmd.Goal, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sprintRepo.Save(ctx, sprint); err != nil {
		uc.logger.Errorw("failed to create sprint", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("sprint created", "sprint_id", sprint.ID())
	return NewSprintDTO(sprint), nil
}

func (uc *SprintUseCases) Update(ctx context.Context, cmd UpdateSprintCommand) (*SprintDTO, error) {
	if cmd.SprintID == 0 {
		return nil, errors.NewValidationError("sprint ID is required")
	}

	sprint, err := uc.sprintRepo.GetByID(ctx, cmd.SprintID)
	if err != nil {
		return nil, err
	}

	if err := sprint.Update(cmd.Name, cmd.Goal, cmd.StartDate, cmd.EndDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != nil {
		if err := sprint.ChangeStatus(project.SprintStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.sprintRepo.Update(ctx, sprint); err != nil {
		uc.logger.Errorw("failed to update sprint", "sprint_id", cmd.SprintID, "error", err)
		return nil, err
	}

	return NewSprintDTO(sprint), nil
}

func (uc *SprintUseCases) Delete(ctx context.Context, cmd DeleteSprintCommand) error {
	if cmd.SprintID == 0 {
		return errors.NewValidationError("sprint ID is required")
	}

	if _, err := uc.sprintRepo.GetByID(ctx, cmd.SprintID); err != nil {
		return err
	}

	if err := uc.sprintRepo.Delete(ctx, cmd.SprintID); err != nil {
		uc.logger.Errorw("failed to delete sprint", "sprint_id", cmd.SprintID, "error", err)
		return err
	}

	uc.logger.Infow("sprint deleted", "sprint_id", cmd.SprintID)
	return nil
}
