package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("first ticket lands on the first step", func(t *testing.T) {
		repo := &mockTicketRepository{
			MaxPositionFunc: func(_ context.Context) (int64, error) { return 0, nil },
			SaveFunc: func(_ context.Context, tk *ticket.Ticket) error {
				return tk.SetID(1)
			},
		}

		uc := NewCreateTicketUseCase(repo, fakeTxManager{}, testLogger())
		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:     "Broken login",
			Priority:  "high",
			CreatorID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1000), result.Ticket.Position)
		assert.Equal(t, "todo", result.Ticket.Status)
	})

	t.Run("position continues past the current maximum", func(t *testing.T) {
		repo := &mockTicketRepository{
			MaxPositionFunc: func(_ context.Context) (int64, error) { return 4500, nil },
			SaveFunc: func(_ context.Context, tk *ticket.Ticket) error {
				return tk.SetID(2)
			},
		}

		uc := NewCreateTicketUseCase(repo, fakeTxManager{}, testLogger())
		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:     "Slow dashboard",
			Priority:  "medium",
			CreatorID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5500), result.Ticket.Position)
	})

	t.Run("save failure surfaces the error", func(t *testing.T) {
		repo := &mockTicketRepository{
			MaxPositionFunc: func(_ context.Context) (int64, error) { return 0, nil },
			SaveFunc: func(_ context.Context, _ *ticket.Ticket) error {
				return errors.NewInternalError("insert failed")
			},
		}

		uc := NewCreateTicketUseCase(repo, fakeTxManager{}, testLogger())
		_, err := uc.Execute(ctx, CreateTicketCommand{
			Title:     "Title",
			Priority:  "low",
			CreatorID: 1,
		})
		assert.Error(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			cmd  CreateTicketCommand
		}{
			{"missing title", CreateTicketCommand{Priority: "low", CreatorID: 1}},
			{"oversized title", CreateTicketCommand{Title: strings.Repeat("x", 201), Priority: "low", CreatorID: 1}},
			{"missing creator", CreateTicketCommand{Title: "Title", Priority: "low"}},
			{"invalid priority", CreateTicketCommand{Title: "Title", Priority: "critical", CreatorID: 1}},
		}

		uc := NewCreateTicketUseCase(&mockTicketRepository{}, fakeTxManager{}, testLogger())
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.cmd)
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}
