package usecases

import (
	"context"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type DeleteColumnCommand struct {
	ColumnID uint
}

type DeleteColumnUseCase struct {
	columnRepo board.ColumnRepository
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteColumnUseCase(
	columnRepo board.ColumnRepository,
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteColumnUseCase {
	return &DeleteColumnUseCase{
		columnRepo: columnRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteColumnUseCase) Execute(ctx context.Context, cmd DeleteColumnCommand) error {
	if cmd.ColumnID == 0 {
		return errors.NewValidationError("column ID is required")
	}

	// The emptiness check and the delete share one transaction so a
	// ticket created in between cannot be left without a column.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		column, err := uc.columnRepo.GetByID(txCtx, cmd.ColumnID)
		if err != nil {
			return err
		}

		count, err := uc.ticketRepo.CountByStatus(txCtx, ticket.Status(column.Status()))
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewConflictError("column still has tickets")
		}

		return uc.columnRepo.Delete(txCtx, cmd.ColumnID)
	})
	if err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete board column", "column_id", cmd.ColumnID, "error", err)
		return err
	}

	uc.logger.Infow("board column deleted", "column_id", cmd.ColumnID)
	return nil
}
