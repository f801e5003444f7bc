package usecases

import (
	"context"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type CreateColumnCommand struct {
	Title     string
	Status    string
	SortOrder int
}

type CreateColumnUseCase struct {
	columnRepo board.ColumnRepository
	logger     logger.Interface
}

func NewCreateColumnUseCase(
	columnRepo board.ColumnRepository,
	logger logger.Interface,
) *CreateColumnUseCase {
	return &CreateColumnUseCase{
		columnRepo: columnRepo,
		logger:     logger,
	}
}

func (uc *CreateColumnUseCase) Execute(ctx context.Context, cmd CreateColumnCommand) (*ColumnDTO, error) {
	column, err := board.NewColumn(cmd.Title, cmd.Status, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.columnRepo.Save(ctx, column); err != nil {
		uc.logger.Errorw("failed to create board column", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("board column created", "column_id", column.ID(), "status", column.Status())
	return NewColumnDTO(column), nil
}
