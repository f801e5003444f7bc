package usecases

import (
	"context"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID     uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type DeleteCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	// A missing comment is a plain not-found: the counter is never
	// touched in that case.
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		comment, err := uc.commentRepo.GetByID(txCtx, cmd.CommentID)
		if err != nil {
			return err
		}

		if comment.AuthorID() != cmd.RequesterID && !cmd.RequesterRole.IsAdmin() {
			return errors.NewForbiddenError("only the author or an admin can delete a comment")
		}

		if err := uc.commentRepo.Delete(txCtx, cmd.CommentID); err != nil {
			return err
		}

		if comment.Counted() {
			return uc.ticketRepo.AdjustCommentCount(txCtx, comment.TicketID(), -1)
		}
		return nil
	})
}
