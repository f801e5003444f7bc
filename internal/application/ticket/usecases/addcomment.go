package usecases

import (
	"context"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Content  string
	Type     string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   TransactionManager
	sanitizer   Sanitizer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	sanitizer Sanitizer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	ctype := ticket.CommentType(cmd.Type)
	if cmd.Type == "" {
		ctype = ticket.CommentTypeText
	}
	if !ctype.IsValid() {
		return nil, errors.NewValidationError("invalid comment type")
	}

	content := uc.sanitizer.Sanitize(cmd.Content)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, content, ctype)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Insert and counter adjustment commit or roll back together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}
		if comment.Counted() {
			return uc.ticketRepo.AdjustCommentCount(txCtx, cmd.TicketID, 1)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID(), "type", ctype.String())
	return NewCommentDTO(comment), nil
}
