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

type recordingSanitizer struct {
	calls []string
}

func (s *recordingSanitizer) Sanitize(input string) string {
	s.calls = append(s.calls, input)
	return strings.ReplaceAll(input, "<script>", "")
}

func TestAddCommentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("text comment bumps the counter", func(t *testing.T) {
		var savedComment *ticket.Comment
		var counterDelta int

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructTicket(id, 1000), nil
			},
			AdjustCommentCountFunc: func(_ context.Context, ticketID uint, delta int) error {
				assert.Equal(t, uint(1), ticketID)
				counterDelta = delta
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(_ context.Context, c *ticket.Comment) error {
				savedComment = c
				return c.SetID(10)
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, passthroughSanitizer{}, testLogger())
		dto, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, AuthorID: 2, Content: "looks good"})
		require.NoError(t, err)

		require.NotNil(t, savedComment)
		assert.Equal(t, 1, counterDelta)
		assert.Equal(t, uint(10), dto.ID)
		assert.Equal(t, "text", dto.Type, "type defaults to text")
	})

	t.Run("system comment leaves the counter alone", func(t *testing.T) {
		adjusted := false
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructTicket(id, 1000), nil
			},
			AdjustCommentCountFunc: func(_ context.Context, _ uint, _ int) error {
				adjusted = true
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(_ context.Context, c *ticket.Comment) error { return c.SetID(11) },
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, passthroughSanitizer{}, testLogger())
		dto, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, AuthorID: 2, Content: "moved to done", Type: "system"})
		require.NoError(t, err)

		assert.False(t, adjusted)
		assert.Equal(t, "system", dto.Type)
	})

	t.Run("content passes through the sanitizer", func(t *testing.T) {
		sanitizer := &recordingSanitizer{}
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructTicket(id, 1000), nil
			},
			AdjustCommentCountFunc: func(_ context.Context, _ uint, _ int) error { return nil },
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(_ context.Context, c *ticket.Comment) error { return c.SetID(12) },
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, sanitizer, testLogger())
		dto, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, AuthorID: 2, Content: "<script>hi"})
		require.NoError(t, err)

		assert.Equal(t, []string{"<script>hi"}, sanitizer.calls)
		assert.Equal(t, "hi", dto.Content)
	})

	t.Run("missing ticket aborts before the save", func(t *testing.T) {
		saved := false
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(_ context.Context, _ *ticket.Comment) error {
				saved = true
				return nil
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, passthroughSanitizer{}, testLogger())
		_, err := uc.Execute(ctx, AddCommentCommand{TicketID: 99, AuthorID: 2, Content: "hi"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.False(t, saved)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			cmd  AddCommentCommand
		}{
			{"missing ticket ID", AddCommentCommand{AuthorID: 2, Content: "hi"}},
			{"missing author ID", AddCommentCommand{TicketID: 1, Content: "hi"}},
			{"empty content", AddCommentCommand{TicketID: 1, AuthorID: 2}},
			{"invalid type", AddCommentCommand{TicketID: 1, AuthorID: 2, Content: "hi", Type: "note"}},
		}

		uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, fakeTxManager{}, passthroughSanitizer{}, testLogger())
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.cmd)
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}
