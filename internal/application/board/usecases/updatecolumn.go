package usecases

import (
	"context"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type UpdateColumnCommand struct {
	ColumnID  uint
	Title     *string
	SortOrder *int
}

type UpdateColumnUseCase struct {
	columnRepo board.ColumnRepository
	logger     logger.Interface
}

func NewUpdateColumnUseCase(
	columnRepo board.ColumnRepository,
	logger logger.Interface,
) *UpdateColumnUseCase {
	return &UpdateColumnUseCase{
		columnRepo: columnRepo,
		logger:     logger,
	}
}

func (uc *UpdateColumnUseCase) Execute(ctx context.Context, cmd UpdateColumnCommand) (*ColumnDTO, error) {
	if cmd.ColumnID == 0 {
		return nil, errors.NewValidationError("column ID is required")
	}
	if cmd.Title == nil && cmd.SortOrder == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	column, err := uc.columnRepo.GetByID(ctx, cmd.ColumnID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := column.Rename(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.SortOrder != nil {
		if err := column.SetSortOrder(*cmd.SortOrder); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.columnRepo.Update(ctx, column); err != nil {
		uc.logger.Errorw("failed to update board column", "column_id", cmd.ColumnID, "error", err)
		return nil, err
	}

	uc.logger.Infow("board column updated", "column_id", cmd.ColumnID)
	return NewColumnDTO(column), nil
}
