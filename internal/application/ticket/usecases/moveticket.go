package usecases

import (
	"context"

	"flowdesk/internal/domain/board"
	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type MoveTicketCommand struct {
	TicketID uint
	// Status is the target column; empty keeps the current one.
	Status string
	// AfterID names the card the ticket should sit behind. Nil moves
	// the ticket to the top of the board.
	AfterID *uint
}

type MoveTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewMoveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *MoveTicketUseCase {
	return &MoveTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *MoveTicketUseCase) Execute(ctx context.Context, cmd MoveTicketCommand) (*TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AfterID != nil && *cmd.AfterID == cmd.TicketID {
		return nil, errors.NewValidationError("ticket cannot be placed after itself")
	}
	if cmd.Status != "" && !ticket.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	var moved *ticket.Ticket
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if cmd.Status != "" {
			if err := t.ChangeStatus(ticket.Status(cmd.Status)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		pos, err := uc.resolvePosition(txCtx, t.ID(), cmd.AfterID)
		if err != nil {
			return err
		}

		if err := t.PlaceAt(pos); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		moved = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket moved", "ticket_id", cmd.TicketID, "position", moved.Position())
	return NewTicketDTO(moved), nil
}

// resolvePosition computes the new position between the after-card and
// its successor. When the gap is exhausted the whole board is
// renormalized to multiples of the position step and the computation
// retries once.
func (uc *MoveTicketUseCase) resolvePosition(ctx context.Context, ticketID uint, afterID *uint) (int64, error) {
	pos, ok, err := uc.tryResolve(ctx, ticketID, afterID)
	if err != nil {
		return 0, err
	}
	if ok {
		return pos, nil
	}

	ids, err := uc.ticketRepo.IDsOrderedByPosition(ctx)
	if err != nil {
		return 0, err
	}
	if err := uc.ticketRepo.SetPositions(ctx, ids, board.Renormalize(len(ids))); err != nil {
		return 0, err
	}

	pos, ok, err = uc.tryResolve(ctx, ticketID, afterID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.NewInternalError("failed to resolve position after renormalization")
	}
	return pos, nil
}

func (uc *MoveTicketUseCase) tryResolve(ctx context.Context, ticketID uint, afterID *uint) (int64, bool, error) {
	var before int64
	if afterID != nil {
		after, err := uc.ticketRepo.GetByID(ctx, *afterID)
		if err != nil {
			return 0, false, err
		}
		before = after.Position()
	}

	next, found, err := uc.ticketRepo.NextPositionAfter(ctx, before, ticketID)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return board.NextPosition(before), true, nil
	}

	mid, ok := board.Midpoint(before, next)
	return mid, ok, nil
}
