package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/logger"
)

func testTime() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

// mockTicketRepository implements ticket.TicketRepository with function
// fields so each test only wires the calls it expects.
type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc               func(ctx context.Context, ticketID uint) error
	GetByIDFunc              func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                 func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc        func(ctx context.Context, status ticket.Status) (int64, error)
	MaxPositionFunc          func(ctx context.Context) (int64, error)
	NextPositionAfterFunc    func(ctx context.Context, pos int64, excludeID uint) (int64, bool, error)
	UpdatePositionFunc       func(ctx context.Context, ticketID uint, position int64) error
	IDsOrderedByPositionFunc func(ctx context.Context) ([]uint, error)
	SetPositionsFunc         func(ctx context.Context, ids []uint, positions []int64) error
	AdjustCommentCountFunc   func(ctx context.Context, ticketID uint, delta int) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return m.SaveFunc(ctx, t)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return m.UpdateFunc(ctx, t)
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	return m.DeleteFunc(ctx, ticketID)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return m.GetByIDFunc(ctx, ticketID)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status ticket.Status) (int64, error) {
	return m.CountByStatusFunc(ctx, status)
}

func (m *mockTicketRepository) MaxPosition(ctx context.Context) (int64, error) {
	return m.MaxPositionFunc(ctx)
}

func (m *mockTicketRepository) NextPositionAfter(ctx context.Context, pos int64, excludeID uint) (int64, bool, error) {
	return m.NextPositionAfterFunc(ctx, pos, excludeID)
}

func (m *mockTicketRepository) UpdatePosition(ctx context.Context, ticketID uint, position int64) error {
	return m.UpdatePositionFunc(ctx, ticketID, position)
}

func (m *mockTicketRepository) IDsOrderedByPosition(ctx context.Context) ([]uint, error) {
	return m.IDsOrderedByPositionFunc(ctx)
}

func (m *mockTicketRepository) SetPositions(ctx context.Context, ids []uint, positions []int64) error {
	return m.SetPositionsFunc(ctx, ids, positions)
}

func (m *mockTicketRepository) AdjustCommentCount(ctx context.Context, ticketID uint, delta int) error {
	return m.AdjustCommentCountFunc(ctx, ticketID, delta)
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc       func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteFunc        func(ctx context.Context, commentID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	return m.SaveFunc(ctx, c)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	return m.GetByIDFunc(ctx, commentID)
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return m.GetByTicketIDFunc(ctx, ticketID)
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	return m.DeleteFunc(ctx, commentID)
}

// fakeTxManager runs the callback directly, without a database.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(input string) string { return input }

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reconstructTicket(id uint, position int64) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id, "Ticket", "", ticket.StatusTodo, ticket.PriorityMedium,
		1, nil, position, 0, testTime(), testTime(),
	)
	if err != nil {
		panic(err)
	}
	return t
}
