package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
)

func reconstructComment(t *testing.T, id, ticketID, authorID uint, ctype ticket.CommentType) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, ticketID, authorID, "hello", ctype, testTime(), testTime())
	require.NoError(t, err)
	return c
}

func TestDeleteCommentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes own comment and counter drops", func(t *testing.T) {
		deleted := false
		var counterDelta int

		ticketRepo := &mockTicketRepository{
			AdjustCommentCountFunc: func(_ context.Context, ticketID uint, delta int) error {
				assert.Equal(t, uint(5), ticketID)
				counterDelta = delta
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Comment, error) {
				return reconstructComment(t, id, 5, 2, ticket.CommentTypeText), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewDeleteCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{CommentID: 10, RequesterID: 2, RequesterRole: authorization.RoleUser})
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, -1, counterDelta)
	})

	t.Run("admin deletes someone else's comment", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			AdjustCommentCountFunc: func(_ context.Context, _ uint, _ int) error { return nil },
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Comment, error) {
				return reconstructComment(t, id, 5, 2, ticket.CommentTypeText), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error { return nil },
		}

		uc := NewDeleteCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{CommentID: 10, RequesterID: 99, RequesterRole: authorization.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("non-author non-admin is forbidden", func(t *testing.T) {
		deleted := false
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Comment, error) {
				return reconstructComment(t, id, 5, 2, ticket.CommentTypeText), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewDeleteCommentUseCase(&mockTicketRepository{}, commentRepo, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{CommentID: 10, RequesterID: 3, RequesterRole: authorization.RoleUser})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
		assert.False(t, deleted)
	})

	t.Run("system comment deletion leaves the counter alone", func(t *testing.T) {
		adjusted := false
		ticketRepo := &mockTicketRepository{
			AdjustCommentCountFunc: func(_ context.Context, _ uint, _ int) error {
				adjusted = true
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(_ context.Context, id uint) (*ticket.Comment, error) {
				return reconstructComment(t, id, 5, 2, ticket.CommentTypeSystem), nil
			},
			DeleteFunc: func(_ context.Context, _ uint) error { return nil },
		}

		uc := NewDeleteCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{CommentID: 10, RequesterID: 2, RequesterRole: authorization.RoleUser})
		require.NoError(t, err)
		assert.False(t, adjusted)
	})

	t.Run("missing comment never touches the counter", func(t *testing.T) {
		adjusted := false
		ticketRepo := &mockTicketRepository{
			AdjustCommentCountFunc: func(_ context.Context, _ uint, _ int) error {
				adjusted = true
				return nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Comment, error) {
				return nil, errors.NewNotFoundError("comment not found")
			},
		}

		uc := NewDeleteCommentUseCase(ticketRepo, commentRepo, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{CommentID: 10, RequesterID: 2, RequesterRole: authorization.RoleUser})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.False(t, adjusted)
	})

	t.Run("rejects zero comment ID", func(t *testing.T) {
		uc := NewDeleteCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, fakeTxManager{}, testLogger())
		err := uc.Execute(ctx, DeleteCommentCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
