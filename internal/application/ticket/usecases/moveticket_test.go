package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
)

func TestMoveTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts at midpoint between neighbors", func(t *testing.T) {
		moving := reconstructTicket(1, 5000)
		after := reconstructTicket(2, 1000)

		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				switch id {
				case 1:
					return moving, nil
				case 2:
					return after, nil
				}
				return nil, errors.NewNotFoundError("ticket not found")
			},
			NextPositionAfterFunc: func(_ context.Context, pos int64, excludeID uint) (int64, bool, error) {
				assert.Equal(t, int64(1000), pos)
				assert.Equal(t, uint(1), excludeID)
				return 2000, true, nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error { return nil },
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		afterID := uint(2)
		dto, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, AfterID: &afterID})
		require.NoError(t, err)
		assert.Equal(t, int64(1500), dto.Position)
	})

	t.Run("appends after the last card", func(t *testing.T) {
		moving := reconstructTicket(1, 1000)
		after := reconstructTicket(2, 4000)

		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				if id == 2 {
					return after, nil
				}
				return moving, nil
			},
			NextPositionAfterFunc: func(_ context.Context, pos int64, _ uint) (int64, bool, error) {
				return 0, false, nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error { return nil },
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		afterID := uint(2)
		dto, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, AfterID: &afterID})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), dto.Position)
	})

	t.Run("moves to the top when after is nil", func(t *testing.T) {
		moving := reconstructTicket(1, 3000)

		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				return moving, nil
			},
			NextPositionAfterFunc: func(_ context.Context, pos int64, _ uint) (int64, bool, error) {
				assert.Zero(t, pos)
				return 1000, true, nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error { return nil },
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		dto, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(500), dto.Position)
	})

	t.Run("renormalizes when the gap is exhausted", func(t *testing.T) {
		moving := reconstructTicket(1, 5000)
		after := reconstructTicket(2, 1000)

		renormalized := false
		var setIDs []uint
		var setPositions []int64

		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				if id == 2 {
					if renormalized {
						return reconstructTicket(2, 2000), nil
					}
					return after, nil
				}
				return moving, nil
			},
			NextPositionAfterFunc: func(_ context.Context, pos int64, _ uint) (int64, bool, error) {
				if renormalized {
					return 3000, true, nil
				}
				// Adjacent positions leave no room for a midpoint.
				return pos + 1, true, nil
			},
			IDsOrderedByPositionFunc: func(_ context.Context) ([]uint, error) {
				return []uint{2, 3, 1}, nil
			},
			SetPositionsFunc: func(_ context.Context, ids []uint, positions []int64) error {
				renormalized = true
				setIDs = ids
				setPositions = positions
				return nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error { return nil },
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		afterID := uint(2)
		dto, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, AfterID: &afterID})
		require.NoError(t, err)

		assert.True(t, renormalized)
		assert.Equal(t, []uint{2, 3, 1}, setIDs)
		assert.Equal(t, []int64{1000, 2000, 3000}, setPositions)
		assert.Equal(t, int64(2500), dto.Position)
	})

	t.Run("changes status while moving", func(t *testing.T) {
		moving := reconstructTicket(1, 1000)

		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				return moving, nil
			},
			NextPositionAfterFunc: func(_ context.Context, pos int64, _ uint) (int64, bool, error) {
				return 0, false, nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		dto, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, Status: "done"})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "done", dto.Status)
		assert.Equal(t, ticket.StatusDone, updated.Status())
	})

	t.Run("rejects placing a ticket after itself", func(t *testing.T) {
		uc := NewMoveTicketUseCase(&mockTicketRepository{}, fakeTxManager{}, testLogger())
		selfID := uint(1)
		_, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, AfterID: &selfID})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		uc := NewMoveTicketUseCase(&mockTicketRepository{}, fakeTxManager{}, testLogger())
		_, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, Status: "archived"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects zero ticket ID", func(t *testing.T) {
		uc := NewMoveTicketUseCase(&mockTicketRepository{}, fakeTxManager{}, testLogger())
		_, err := uc.Execute(ctx, MoveTicketCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("propagates not found for missing after card", func(t *testing.T) {
		moving := reconstructTicket(1, 1000)
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				if id == 1 {
					return moving, nil
				}
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewMoveTicketUseCase(repo, fakeTxManager{}, testLogger())
		afterID := uint(99)
		_, err := uc.Execute(ctx, MoveTicketCommand{TicketID: 1, AfterID: &afterID})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
