package ticket

import (
	"context"

	"flowdesk/internal/shared/query"
)

type TicketFilter struct {
	query.BaseFilter
	Status     *Status
	Priority   *Priority
	CreatorID  *uint
	AssigneeID *uint
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// MaxPosition returns the largest board position in the collection, 0 when
	// empty. Callers assigning positions must hold the creating transaction;
	// the read locks the rows it inspects.
	MaxPosition(ctx context.Context) (int64, error)
	// NextPositionAfter returns the smallest position strictly greater than
	// pos, excluding the card being moved. found is false when no such card
	// exists.
	NextPositionAfter(ctx context.Context, pos int64, excludeID uint) (next int64, found bool, err error)
	UpdatePosition(ctx context.Context, ticketID uint, position int64) error
	// IDsOrderedByPosition returns all ticket IDs in display order.
	IDsOrderedByPosition(ctx context.Context) ([]uint, error)
	SetPositions(ctx context.Context, ids []uint, positions []int64) error

	// AdjustCommentCount atomically adds delta to the ticket's denormalized
	// comment count. Must run inside the same transaction as the comment
	// write or delete it compensates for.
	AdjustCommentCount(ctx context.Context, ticketID uint, delta int) error
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}
