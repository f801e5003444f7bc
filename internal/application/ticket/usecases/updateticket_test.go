package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	existing := func() *ticket.Ticket {
		tk, err := ticket.ReconstructTicket(
			1, "Broken login", "steps to reproduce", ticket.StatusTodo,
			ticket.PriorityMedium, 1, nil, 1000, 0, testTime(), testTime(),
		)
		require.NoError(t, err)
		return tk
	}

	t.Run("priority-only update keeps title and description", func(t *testing.T) {
		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
				return existing(), nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, testLogger())
		dto, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID: 1,
			Priority: strPtr("urgent"),
		})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, "Broken login", updated.Title())
		assert.Equal(t, "steps to reproduce", updated.Description())
		assert.Equal(t, ticket.PriorityUrgent, updated.Priority())
		assert.Equal(t, "urgent", dto.Priority)
	})

	t.Run("clearing the description persists an empty string", func(t *testing.T) {
		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
				return existing(), nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, testLogger())
		_, err := uc.Execute(ctx, UpdateTicketCommand{
			TicketID:    1,
			Description: strPtr(""),
		})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, "Broken login", updated.Title())
		assert.Empty(t, updated.Description())
	})

	t.Run("unassigns without touching other fields", func(t *testing.T) {
		assignee := uint(4)
		var updated *ticket.Ticket
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
				tk, err := ticket.ReconstructTicket(
					1, "Broken login", "", ticket.StatusTodo,
					ticket.PriorityMedium, 1, &assignee, 1000, 0, testTime(), testTime(),
				)
				require.NoError(t, err)
				return tk, nil
			},
			UpdateFunc: func(_ context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, testLogger())
		_, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1, Unassign: true})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Nil(t, updated.AssigneeID())
		assert.Equal(t, "Broken login", updated.Title())
	})

	t.Run("rejects an explicitly empty title", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
				return existing(), nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, testLogger())
		_, err := uc.Execute(ctx, UpdateTicketCommand{TicketID: 1, Title: strPtr("")})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects zero ticket ID", func(t *testing.T) {
		uc := NewUpdateTicketUseCase(&mockTicketRepository{}, testLogger())
		_, err := uc.Execute(ctx, UpdateTicketCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
